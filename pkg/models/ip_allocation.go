package models

import (
	"github.com/hashicorp/go-multierror"
	"github.com/stevedore-project/stevedore/pkg/lib/validate"
)

// IPFamily is the address family of a pre-reserved IP address.
type IPFamily string

const (
	IPFamilyV4 IPFamily = "V4"
	IPFamilyV6 IPFamily = "V6"
)

// IPAddress is a concrete address to be assigned to a task.
type IPAddress struct {
	Family       IPFamily
	Address      string
	PrefixLength int
}

// IPLocation pins an allocation to a network topology position. An agent can
// only bind an allocation whose location matches its own region, availability
// zone and subnet exactly.
type IPLocation struct {
	Region           string
	AvailabilityZone string
	SubnetID         string
}

// IPAllocation is an IP address pre-reserved from the IP service with a fixed
// topological location. Jobs request allocations as a list on their container
// resources; at most one allocation is ultimately bound per task.
type IPAllocation struct {
	AllocationID string
	Address      IPAddress
	Location     IPLocation
}

func (a IPAllocation) Validate() error {
	var mErr *multierror.Error
	mErr = multierror.Append(mErr, validate.NotBlank(a.AllocationID, "allocation is missing an allocationId"))
	mErr = multierror.Append(mErr, validate.NotBlank(a.Address.Address, "allocation %s is missing an address", a.AllocationID))
	mErr = multierror.Append(mErr, validate.NotBlank(a.Location.Region, "allocation %s is missing a region", a.AllocationID))
	mErr = multierror.Append(mErr, validate.NotBlank(a.Location.AvailabilityZone, "allocation %s is missing an availability zone", a.AllocationID))
	mErr = multierror.Append(mErr, validate.NotBlank(a.Location.SubnetID, "allocation %s is missing a subnet", a.AllocationID))
	return mErr.ErrorOrNil()
}

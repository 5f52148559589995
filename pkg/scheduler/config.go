package scheduler

import (
	"time"

	"github.com/pkg/errors"
	"github.com/spf13/viper"
)

// Configuration is the placement-layer slice of the scheduler configuration.
type Configuration struct {
	// InstanceAttributeName is the agent attribute key that carries the
	// instance id used for agent directory lookups.
	InstanceAttributeName string `mapstructure:"InstanceAttributeName"`

	// AvailabilityZoneAttributeName is the agent attribute key that carries
	// the instance's availability zone.
	AvailabilityZoneAttributeName string `mapstructure:"AvailabilityZoneAttributeName"`

	// RegionAttributeName is the agent attribute key that carries the
	// instance's region.
	RegionAttributeName string `mapstructure:"RegionAttributeName"`

	// SubnetAttributeName is the agent attribute key that carries the
	// instance's subnet id.
	SubnetAttributeName string `mapstructure:"SubnetAttributeName"`

	// EvaluationTimeout bounds a single constraint evaluation when
	// collaborators are remote. Zero disables the deadline; the in-memory
	// collaborators never need one. Evaluations that exceed the deadline
	// fail closed.
	EvaluationTimeout time.Duration `mapstructure:"EvaluationTimeout"`
}

func DefaultConfiguration() Configuration {
	return Configuration{
		InstanceAttributeName:         "id",
		AvailabilityZoneAttributeName: "availabilityZone",
		RegionAttributeName:           "region",
		SubnetAttributeName:           "subnetId",
	}
}

// ConfigurationFromViper reads the recognized placement keys from the given
// viper instance, falling back to defaults for unset keys.
func ConfigurationFromViper(v *viper.Viper) (Configuration, error) {
	cfg := DefaultConfiguration()
	if err := v.Unmarshal(&cfg); err != nil {
		return Configuration{}, errors.Wrap(err, "failed to unmarshal placement configuration")
	}
	if cfg.InstanceAttributeName == "" {
		return Configuration{}, errors.New("placement configuration requires a non-empty InstanceAttributeName")
	}
	return cfg, nil
}

package session

import (
	"github.com/PrismLauncher/installer/internal/errs"
	"github.com/PrismLauncher/installer/internal/hooks"
	"github.com/PrismLauncher/installer/internal/installation"
	"github.com/PrismLauncher/installer/internal/operations"
	"github.com/PrismLauncher/installer/internal/redist"
)

// Plan is everything the hooks decided for one session
type Plan struct {
	Mode       string                   `json:"mode" yaml:"mode"`
	TargetDirs *installation.TargetDirs `json:"targetDirs,omitempty" yaml:"targetDirs,omitempty"`
	Values     map[string]string        `json:"values" yaml:"values"`
	Components []ComponentPlan          `json:"components" yaml:"components"`
}

// ComponentPlan is the operation list of one component
type ComponentPlan struct {
	Name       string                 `json:"name" yaml:"name"`
	Redist     redist.Result          `json:"redist" yaml:"redist"`
	Operations []operations.Operation `json:"operations" yaml:"operations"`
}

// Run drives the hooks in runtime order: the controller once, then every component
func (s *Session) Run(controller *hooks.Controller, script *hooks.ComponentScript, components ...*Component) (*Plan, error) {
	plan := &Plan{Mode: s.mode.String()}

	cres, err := controller.Construct(s)
	if err != nil {
		return nil, err
	}
	plan.TargetDirs = cres.TargetDirs

	for _, c := range components {
		cp, err := s.RunComponent(script, c)
		if err != nil {
			return nil, errs.Wrap(err, "Component %s failed", c.Name())
		}
		plan.Components = append(plan.Components, cp)
	}

	plan.Values = s.Values()
	return plan, nil
}

// RunComponent drives the component hook for a single component
func (s *Session) RunComponent(script *hooks.ComponentScript, c *Component) (ComponentPlan, error) {
	result, err := script.CreateOperations(c)
	if err != nil {
		return ComponentPlan{}, err
	}
	return ComponentPlan{Name: c.Name(), Redist: result, Operations: c.Operations()}, nil
}

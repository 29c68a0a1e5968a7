// Package catalog defines the membership plan and add-on feature tables
// and the store that owns them. Plans and features are keyed by unique
// name; extension happens only through explicit upsert operations.
package catalog

import (
	"errors"
	"fmt"
	"math"
	"strings"
	"sync"

	"golang.org/x/text/unicode/norm"
)

var ErrInvalidRecord = errors.New("invalid catalog record")

// Plan describes a membership plan.
type Plan struct {
	Name      string   `json:"name" yaml:"name"`
	BaseCost  float64  `json:"base_cost" yaml:"base_cost"`
	Benefits  []string `json:"benefits,omitempty" yaml:"benefits,omitempty"`
	Available bool     `json:"available" yaml:"available"`
}

// String renders the plan as a single menu line.
func (p Plan) String() string {
	return fmt.Sprintf("%s ($%.2f) - Benefits: %s", p.Name, p.BaseCost, strings.Join(p.Benefits, ", "))
}

// Feature describes an add-on feature that can be attached to a membership.
type Feature struct {
	Name      string  `json:"name" yaml:"name"`
	Cost      float64 `json:"cost" yaml:"cost"`
	Available bool    `json:"available" yaml:"available"`
}

// String renders the feature as a single menu line.
func (f Feature) String() string {
	return fmt.Sprintf("%s ($%.2f)", f.Name, f.Cost)
}

// Seed records. Costs are monthly USD amounts.
var (
	Basic = Plan{
		Name:      "Basic",
		BaseCost:  29.99,
		Benefits:  []string{"Access to gym equipment", "Basic locker room access"},
		Available: true,
	}

	Premium = Plan{
		Name:      "Premium",
		BaseCost:  59.99,
		Benefits:  []string{"Access to gym equipment", "Premium locker room", "Sauna access"},
		Available: true,
	}

	Family = Plan{
		Name:      "Family",
		BaseCost:  99.99,
		Benefits:  []string{"Up to 4 family members", "All Premium benefits", "Family lounge access"},
		Available: true,
	}

	PersonalTraining = Feature{
		Name:      "Personal Training",
		Cost:      50.00,
		Available: true,
	}

	GroupClasses = Feature{
		Name:      "Group Classes",
		Cost:      30.00,
		Available: true,
	}

	NutritionalConsulting = Feature{
		Name:      "Nutritional Consulting",
		Cost:      40.00,
		Available: true,
	}
)

// canonicalName returns the NFC form of a catalog key so canonically
// equivalent spellings address the same record.
func canonicalName(name string) string {
	return norm.NFC.String(name)
}

// Catalog is the thread-safe store of plans and features. Iteration
// order is insertion order, so menus and listings stay stable.
type Catalog struct {
	mu           sync.RWMutex
	plans        map[string]Plan
	planOrder    []string
	features     map[string]Feature
	featureOrder []string
}

// New returns a catalog seeded with the predefined plans and features.
func New() *Catalog {
	c := &Catalog{
		plans:    make(map[string]Plan),
		features: make(map[string]Feature),
	}
	for _, p := range []Plan{Basic, Premium, Family} {
		c.putPlan(p)
	}
	for _, f := range []Feature{PersonalTraining, GroupClasses, NutritionalConsulting} {
		c.putFeature(f)
	}
	return c
}

// putPlan stores a plan under its canonical key. Callers hold the write
// lock (or own the catalog exclusively, as in New).
func (c *Catalog) putPlan(p Plan) {
	p.Name = canonicalName(p.Name)
	p.Benefits = append([]string(nil), p.Benefits...)
	if _, ok := c.plans[p.Name]; !ok {
		c.planOrder = append(c.planOrder, p.Name)
	}
	c.plans[p.Name] = p
}

func (c *Catalog) putFeature(f Feature) {
	f.Name = canonicalName(f.Name)
	if _, ok := c.features[f.Name]; !ok {
		c.featureOrder = append(c.featureOrder, f.Name)
	}
	c.features[f.Name] = f
}

// UpsertPlan adds a plan or replaces the full record under the same name.
func (c *Catalog) UpsertPlan(p Plan) error {
	if p.Name == "" {
		return fmt.Errorf("%w: plan name is empty", ErrInvalidRecord)
	}
	if p.BaseCost < 0 || math.IsNaN(p.BaseCost) {
		return fmt.Errorf("%w: plan %q base cost must be non-negative", ErrInvalidRecord, p.Name)
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.putPlan(p)
	return nil
}

// UpsertFeature adds a feature or replaces the full record under the same name.
func (c *Catalog) UpsertFeature(f Feature) error {
	if f.Name == "" {
		return fmt.Errorf("%w: feature name is empty", ErrInvalidRecord)
	}
	if f.Cost < 0 || math.IsNaN(f.Cost) {
		return fmt.Errorf("%w: feature %q cost must be non-negative", ErrInvalidRecord, f.Name)
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.putFeature(f)
	return nil
}

// Plan looks up a plan by exact name.
func (c *Catalog) Plan(name string) (Plan, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	p, ok := c.plans[canonicalName(name)]
	return p, ok
}

// Feature looks up a feature by exact name.
func (c *Catalog) Feature(name string) (Feature, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	f, ok := c.features[canonicalName(name)]
	return f, ok
}

// Plans returns every plan in insertion order, including unavailable ones.
func (c *Catalog) Plans() []Plan {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]Plan, 0, len(c.planOrder))
	for _, name := range c.planOrder {
		out = append(out, c.plans[name])
	}
	return out
}

// Features returns every feature in insertion order, including unavailable ones.
func (c *Catalog) Features() []Feature {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]Feature, 0, len(c.featureOrder))
	for _, name := range c.featureOrder {
		out = append(out, c.features[name])
	}
	return out
}

// AvailablePlans returns the plans currently offered.
func (c *Catalog) AvailablePlans() []Plan {
	var out []Plan
	for _, p := range c.Plans() {
		if p.Available {
			out = append(out, p)
		}
	}
	return out
}

// AvailableFeatures returns the features currently offered.
func (c *Catalog) AvailableFeatures() []Feature {
	var out []Feature
	for _, f := range c.Features() {
		if f.Available {
			out = append(out, f)
		}
	}
	return out
}

// Snapshot returns an immutable copy of the catalog. A calculation runs
// against one View so a catalog update cannot change the outcome of an
// in-flight request.
func (c *Catalog) Snapshot() View {
	c.mu.RLock()
	defer c.mu.RUnlock()
	v := View{
		plans:        make(map[string]Plan, len(c.plans)),
		planOrder:    append([]string(nil), c.planOrder...),
		features:     make(map[string]Feature, len(c.features)),
		featureOrder: append([]string(nil), c.featureOrder...),
	}
	for name, p := range c.plans {
		v.plans[name] = p
	}
	for name, f := range c.features {
		v.features[name] = f
	}
	return v
}

// View is a point-in-time copy of the catalog with no mutation surface.
type View struct {
	plans        map[string]Plan
	planOrder    []string
	features     map[string]Feature
	featureOrder []string
}

// Plan looks up a plan by exact name.
func (v View) Plan(name string) (Plan, bool) {
	p, ok := v.plans[canonicalName(name)]
	return p, ok
}

// Feature looks up a feature by exact name.
func (v View) Feature(name string) (Feature, bool) {
	f, ok := v.features[canonicalName(name)]
	return f, ok
}

// Plans returns every plan in insertion order.
func (v View) Plans() []Plan {
	out := make([]Plan, 0, len(v.planOrder))
	for _, name := range v.planOrder {
		out = append(out, v.plans[name])
	}
	return out
}

// Features returns every feature in insertion order.
func (v View) Features() []Feature {
	out := make([]Feature, 0, len(v.featureOrder))
	for _, name := range v.featureOrder {
		out = append(out, v.features[name])
	}
	return out
}

// AvailablePlans returns the plans offered at snapshot time.
func (v View) AvailablePlans() []Plan {
	var out []Plan
	for _, p := range v.Plans() {
		if p.Available {
			out = append(out, p)
		}
	}
	return out
}

// AvailableFeatures returns the features offered at snapshot time.
func (v View) AvailableFeatures() []Feature {
	var out []Feature
	for _, f := range v.Features() {
		if f.Available {
			out = append(out, f)
		}
	}
	return out
}

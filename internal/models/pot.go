package models

import "time"

// PotKind identifies the appliance type. It is fixed at seed time; the kind
// decides which brew commands the pot accepts.
type PotKind string

const (
	KindCoffeePot PotKind = "coffee-pot"
	KindTeapot    PotKind = "teapot"
)

// PotState is the appliance lifecycle state. The "brewing" phase is
// synchronous and collapses to "ready" within a single request, so it is
// never observed from outside; "empty" is terminal until an administrative
// reset.
type PotState string

const (
	StateIdle    PotState = "idle"
	StateBrewing PotState = "brewing"
	StateReady   PotState = "ready"
	StateEmpty   PotState = "empty"
)

// BrewCommand distinguishes a coffee-brew from a tea-brew (RFC 7168 extends
// BREW to tea). The request facade picks the command from the route scheme.
type BrewCommand string

const (
	CommandBrewCoffee BrewCommand = "brew-coffee"
	CommandBrewTea    BrewCommand = "brew-tea"
)

// Pot is one registered appliance. Kind, Capacity and Varieties never change
// after seeding; State, Level and MilkPouring change only inside the brew
// state machine's per-pot critical section.
type Pot struct {
	ID          string    `json:"pot_id"`
	Kind        PotKind   `json:"kind"`
	Capacity    int       `json:"capacity"`
	Level       int       `json:"level"`
	Varieties   []string  `json:"varieties"`
	State       PotState  `json:"state"`
	MilkPouring bool      `json:"milk_pouring"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// URI renders the scheme-qualified address of the pot: coffee:// for coffee
// pots (RFC 2324), tea:// for teapots (RFC 7168).
func (p Pot) URI() string {
	if p.Kind == KindTeapot {
		return "tea://" + p.ID
	}
	return "coffee://" + p.ID
}

// PotSnapshot is the read model served by status and registry queries.
type PotSnapshot struct {
	Pot
	LevelDisplay string `json:"level_display"`
	BrewCount    int    `json:"brew_count"`
}

// DefaultRegistrySeed is the fixed process-start registry: two coffee pots
// and two teapots, all idle. Overridable through configs/config.yml.
func DefaultRegistrySeed() []Pot {
	return []Pot{
		{ID: "pot-1", Kind: KindCoffeePot, Capacity: 12, Level: 8, Varieties: []string{"Espresso", "Lungo", "Americano"}, State: StateIdle},
		{ID: "pot-2", Kind: KindCoffeePot, Capacity: 6, Level: 2, Varieties: []string{"Espresso"}, State: StateIdle},
		{ID: "kettle-1", Kind: KindTeapot, Capacity: 8, Level: 6, Varieties: []string{"Earl Grey", "Chamomile", "Darjeeling"}, State: StateIdle},
		{ID: "kettle-2", Kind: KindTeapot, Capacity: 4, Level: 4, Varieties: []string{"Oolong"}, State: StateIdle},
	}
}

package upgrade

// Kind separates gear (equipment) from lifestyle (rental) upgrades.
// Gear must be bought sequentially; lifestyle has no ordering rule.
type Kind string

const (
	KindGear      Kind = "gear"
	KindLifestyle Kind = "lifestyle"
)

// Upgrade is a purchasable catalog entry. Buying one deducts Price and
// sets the corresponding level field on the player state.
type Upgrade struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Level int    `json:"level"`
	Price int    `json:"price"`
	Perks string `json:"perks"`
	Kind  Kind   `json:"kind"`
}

// Gear is the equipment ladder, ordered by level. Level 1 is the
// starting gear and is never purchased.
var Gear = []Upgrade{
	{ID: "u1", Name: "Ancient Laptop", Level: 1, Price: 0, Perks: "Slow work speed, Stress builds up quickly.", Kind: KindGear},
	{ID: "u2", Name: "Mechanical Keyboard", Level: 2, Price: 2500, Perks: "Faster typing (Reduced Energy consumption by 15%).", Kind: KindGear},
	{ID: "u3", Name: "Ergonomic Chair", Level: 3, Price: 8000, Perks: "Reduces the frequency of \"Back Pain\" random events.", Kind: KindGear},
	{ID: "u4", Name: "MacBook Pro", Level: 4, Price: 25000, Perks: "Unlocks High-end contracts with 2x Income.", Kind: KindGear},
}

// Lifestyle is the rental ladder.
var Lifestyle = []Upgrade{
	{ID: "ls1", Name: "Luxury Studio", Level: 2, Price: 15000, Perks: "Optimized sleep cycle. Rest time reduced from 8h to 6h. Rent increases to ฿10,000.", Kind: KindLifestyle},
}

// GearByLevel returns the gear entry at the given equipment level.
func GearByLevel(level int) (Upgrade, bool) {
	for _, u := range Gear {
		if u.Level == level {
			return u, true
		}
	}
	return Upgrade{}, false
}

// ByID looks an upgrade up across both catalogs.
func ByID(id string) (Upgrade, bool) {
	for _, u := range Gear {
		if u.ID == id {
			return u, true
		}
	}
	for _, u := range Lifestyle {
		if u.ID == id {
			return u, true
		}
	}
	return Upgrade{}, false
}

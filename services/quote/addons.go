package quote

// AddOn is an optional, independently priced service extra.
type AddOn struct {
	ID    string `json:"id"`
	Label string `json:"label"`
	Price int    `json:"price"`
}

// Catalog lists every bookable add-on with its flat price.
var Catalog = []AddOn{
	{ID: "inside_fridge", Label: "Inside Fridge", Price: 30},
	{ID: "inside_oven", Label: "Inside Oven", Price: 40},
	{ID: "baseboards", Label: "Baseboards", Price: 25},
	{ID: "windows", Label: "Interior Windows", Price: 50},
	{ID: "laundry", Label: "1 Load Laundry", Price: 15},
	{ID: "dishes", Label: "Dishes", Price: 10},
}

// AddOnByID looks up an add-on from the catalog.
func AddOnByID(id string) (AddOn, bool) {
	for _, a := range Catalog {
		if a.ID == id {
			return a, true
		}
	}
	return AddOn{}, false
}

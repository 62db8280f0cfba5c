package models

// PickupStore is a fixed pickup location. The store list is static.
type PickupStore struct {
	ID      int    `json:"id"`
	Name    string `json:"name"`
	Address string `json:"address"`
	Phone   string `json:"phone"`
	Hours   string `json:"hours"`
}

var pickupStores = []PickupStore{
	{
		ID:      1,
		Name:    "Monash Caulfield Campus Store",
		Address: "900 Dandenong Rd, Caulfield East VIC 3145",
		Phone:   "(03) 9903 1234",
		Hours:   "Mon-Fri 8am-8pm, Sat-Sun 9am-6pm",
	},
	{
		ID:      2,
		Name:    "Monash Clayton Campus Store",
		Address: "Wellington Rd, Clayton VIC 3800",
		Phone:   "(03) 9905 5678",
		Hours:   "Mon-Fri 7am-9pm, Sat-Sun 9am-7pm",
	},
	{
		ID:      3,
		Name:    "Melbourne CBD Store",
		Address: "123 Collins St, Melbourne VIC 3000",
		Phone:   "(03) 9600 9999",
		Hours:   "Mon-Sun 9am-9pm",
	},
}

// PickupStores returns all pickup locations.
func PickupStores() []PickupStore {
	out := make([]PickupStore, len(pickupStores))
	copy(out, pickupStores)
	return out
}

// PickupStoreByID returns the store with the given id, or nil.
func PickupStoreByID(id int) *PickupStore {
	for i := range pickupStores {
		if pickupStores[i].ID == id {
			s := pickupStores[i]
			return &s
		}
	}
	return nil
}

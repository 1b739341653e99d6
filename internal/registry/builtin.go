package registry

func init() {
	RegisterMap(MapInfo{
		Index: 0,
		ID:    "deep",
		Title: "Deep Space",
		Decor: Decor{Stars: 150},
	})
	RegisterMap(MapInfo{
		Index: 1,
		ID:    "nebula",
		Title: "Nebula",
		Decor: Decor{Stars: 150, Kind: DecorNebula, Clouds: 15, MinSize: 50, MaxSize: 99},
	})
	RegisterMap(MapInfo{
		Index: 2,
		ID:    "belt",
		Title: "Asteroid Belt",
		Decor: Decor{Stars: 150, Kind: DecorBelt, Clouds: 25, MinSize: 10, MaxSize: 29},
	})

	RegisterShip(ShipInfo{Index: 0, ID: "fighter", Title: "Fighter", Guns: 1})
	RegisterShip(ShipInfo{Index: 1, ID: "interceptor", Title: "Interceptor", Guns: 3})
	RegisterShip(ShipInfo{Index: 2, ID: "bomber", Title: "Bomber", Guns: 1})
}

package catalog

// Demo data set: the Hai Bà Trưng neighbourhood around the BKHN campus.

var demoRestaurants = []Restaurant{
	{
		ID:           "1",
		Name:         "Phở Hà Nội",
		Rating:       4.8,
		ReviewCount:  128,
		Address:      "123 Đại Cồ Việt, Hai Bà Trưng, Hà Nội",
		DistanceKm:   "0.2",
		OpeningHours: "7 AM - 9 PM",
		PriceRange:   "30,000 - 65,000₫",
		ImageURL:     "https://images.unsplash.com/photo-1503764654157-72d979d9af2f",
		IsBusy:       true,
	},
	{
		ID:           "2",
		Name:         "Bún Chả Hương Liên",
		Rating:       4.5,
		Address:      "24 Lê Văn Hưu, Hai Bà Trưng, Hà Nội",
		DistanceKm:   "0.5",
		OpeningHours: "10 AM - 8 PM",
		PriceRange:   "45,000 - 80,000₫",
		ImageURL:     "https://images.unsplash.com/photo-1552611052-33e04de081de",
		IsBusy:       false,
	},
	{
		ID:           "3",
		Name:         "Cơm Tấm Sài Gòn",
		Rating:       4.3,
		Address:      "56 Tạ Quang Bửu, Hai Bà Trưng, Hà Nội",
		DistanceKm:   "0.4",
		OpeningHours: "6 AM - 10 PM",
		PriceRange:   "35,000 - 60,000₫",
		ImageURL:     "https://images.unsplash.com/photo-1455619452474-d2be8b1e70cd",
		IsBusy:       true,
	},
	{
		ID:           "4",
		Name:         "Bánh Mì Pate",
		Rating:       4.7,
		Address:      "35 Tạ Quang Bửu, Hai Bà Trưng, Hà Nội",
		DistanceKm:   "0.3",
		OpeningHours: "6 AM - 7 PM",
		PriceRange:   "25,000 - 40,000₫",
		ImageURL:     "https://images.unsplash.com/photo-1600688640154-9619e002df30",
		IsBusy:       false,
	},
	{
		ID:           "5",
		Name:         "Bún Đậu Mắm Tôm",
		Rating:       4.4,
		Address:      "78 Đại Cồ Việt, Hai Bà Trưng, Hà Nội",
		DistanceKm:   "0.6",
		OpeningHours: "10 AM - 9 PM",
		PriceRange:   "50,000 - 95,000₫",
		ImageURL:     "https://images.unsplash.com/photo-1569718212165-3a8278d5f624",
		IsBusy:       true,
	},
}

var demoDishes = []Dish{
	{
		ID:           "1",
		RestaurantID: "1",
		Name:         "Phở Bò Đặc Biệt",
		Price:        65000,
		Description:  "Phở bò đặc biệt với các loại thịt bò cao cấp và nước dùng đậm đà",
		ImageURL:     "https://images.unsplash.com/photo-1582878826629-29b7ad1cdc43",
		IsPopular:    true,
	},
	{
		ID:           "2",
		RestaurantID: "1",
		Name:         "Bún Chả",
		Price:        55000,
		Description:  "Thịt lợn nướng ăn kèm với bún và nước chấm",
		ImageURL:     "https://images.unsplash.com/photo-1627308595171-d1b5d95d0e7f",
		IsPopular:    true,
	},
	{
		ID:           "3",
		RestaurantID: "1",
		Name:         "Bánh Mì Thịt",
		Price:        35000,
		Description:  "Bánh mì kẹp thịt và rau củ tươi",
		ImageURL:     "https://images.unsplash.com/photo-1600688640154-9619e002df30",
		IsPopular:    false,
	},
	{
		ID:           "4",
		RestaurantID: "1",
		Name:         "Gỏi Cuốn",
		Price:        45000,
		Description:  "Cuốn tươi với tôm, rau thơm và bún",
		ImageURL:     "https://images.unsplash.com/photo-1625835452282-52d128897dec",
		IsPopular:    false,
	},
}

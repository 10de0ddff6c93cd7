// Package catalog holds the static reference data of the store: the
// upcycled-product catalog, the six waste categories with their reward
// amounts, and the drop-off bin locations shown on the map. Nothing here is
// created or mutated at runtime.
package catalog

import "ecosnap/internal/models"

// Categories maps QR code values 0..5 to waste categories. The index is the
// category id.
var Categories = []models.WasteCategory{
	{ID: 0, Name: "Trash", Icon: "🗑️", Color: "from-gray-500 to-gray-600", Credits: 5, Message: "Trash Has Been Disposed Correctly"},
	{ID: 1, Name: "Plastic", Icon: "♻️", Color: "from-blue-500 to-blue-600", Credits: 15, Message: "Plastic Has Been Disposed Correctly"},
	{ID: 2, Name: "Paper", Icon: "📄", Color: "from-green-500 to-green-600", Credits: 12, Message: "Paper Has Been Disposed Correctly"},
	{ID: 3, Name: "Glass", Icon: "🫙", Color: "from-cyan-500 to-cyan-600", Credits: 18, Message: "Glass Has Been Disposed Correctly"},
	{ID: 4, Name: "Metal", Icon: "🥫", Color: "from-yellow-500 to-amber-600", Credits: 20, Message: "Metal Has Been Disposed Correctly"},
	{ID: 5, Name: "Cardboard", Icon: "📦", Color: "from-orange-500 to-orange-600", Credits: 10, Message: "Cardboard Has Been Disposed Correctly"},
}

// CategoryByID returns the waste category for a code value, or false when
// the value is outside the fixed range.
func CategoryByID(id int) (models.WasteCategory, bool) {
	if id < 0 || id >= len(Categories) {
		return models.WasteCategory{}, false
	}
	return Categories[id], true
}

// Products is the full store catalog.
var Products = []models.Product{
	{ID: 1, Name: "Quilted Chain Shoulder Bag", Description: "Luxurious quilted design crafted from recycled materials", Price: 189, Credits: 95, Image: "/assets/bags-eco.jpg", Rating: 4.9, Reviews: 287, WasteType: "Recycled Materials", Badge: "Trending", Category: "bags"},
	{ID: 2, Name: "EcoRun Recycled Sneakers", Description: "Performance sneakers made from ocean plastic & recycled rubber", Price: 129, Credits: 65, Image: "/assets/sneakers-eco.jpg", Rating: 4.8, Reviews: 342, WasteType: "Ocean Plastic", Badge: "Popular", Category: "shoes"},
	{ID: 3, Name: "Bamboo Wood Sunglasses", Description: "Handcrafted wooden frames with polarized eco-lenses", Price: 75, Credits: 38, Image: "/assets/sunglasses-eco.jpg", Rating: 4.7, Reviews: 198, WasteType: "Sustainable Wood", Badge: "New", Category: "accessories"},
	{ID: 4, Name: "EcoSnap Laundry Sheets", Description: "Biodegradable, plastic-free detergent sheets - 32 pack", Price: 24, Credits: 12, Image: "/assets/detergent-eco.jpg", Rating: 4.9, Reviews: 512, WasteType: "Plastic-Free", Badge: "Bestseller", Category: "home"},
	{ID: 5, Name: "Classic Leather Bifold Wallet", Description: "Premium wallets crafted from recycled leather materials", Price: 65, Credits: 33, Image: "/assets/wallet-eco.jpg", Rating: 4.6, Reviews: 156, WasteType: "Recycled Leather", Badge: "New", Category: "accessories"},
	{ID: 6, Name: "Double Ring Compact Wallet", Description: "Elegant compact wallets with signature gold hardware", Price: 89, Credits: 45, Image: "/assets/sidebag-eco.jpg", Rating: 4.8, Reviews: 234, WasteType: "Recycled Materials", Badge: "Trending", Category: "accessories"},
	{ID: 7, Name: "Insulated Eco Water Bottle", Description: "Double-wall vacuum insulated bottles from recycled steel", Price: 42, Credits: 21, Image: "/assets/bottle-eco.jpg", Rating: 4.7, Reviews: 389, WasteType: "Recycled Steel", Badge: "Popular", Category: "accessories"},
	{ID: 8, Name: "Recycled Metal ID Bracelet", Description: "Stylish wristbands crafted from recycled metals & canvas", Price: 35, Credits: 18, Image: "/assets/bracelet-eco.jpg", Rating: 4.5, Reviews: 127, WasteType: "Recycled Metals", Badge: "Limited", Category: "jewelry"},
}

// ProductByID returns the catalog product for an id, or false when no such
// product exists.
func ProductByID(id int) (models.Product, bool) {
	for _, p := range Products {
		if p.ID == id {
			return p, true
		}
	}
	return models.Product{}, false
}

// Bins lists the nearby drop-off points. CategoryID is the code printed on
// the bin's QR label.
var Bins = []models.BinLocation{
	{ID: 1, Name: "Kollam Beach EcoHub", Lat: 8.8932, Lng: 76.6141, Distance: "0.2 km", WasteTypes: []string{"plastic", "paper", "metal"}, Rating: 4.8, Address: "Near Kollam Beach, Kollam", Capacity: 85, Hours: "24/7", Credits: 15, CategoryID: 1},
	{ID: 2, Name: "Ashramam Lake Station", Lat: 8.8882, Lng: 76.5941, Distance: "0.5 km", WasteTypes: []string{"textile", "plastic"}, Rating: 4.6, Address: "Ashramam Lake Road, Kollam", Capacity: 60, Hours: "6 AM - 10 PM", Credits: 12, CategoryID: 1},
	{ID: 3, Name: "Chinnakada Green Point", Lat: 8.8812, Lng: 76.6051, Distance: "0.8 km", WasteTypes: []string{"paper", "metal", "textile"}, Rating: 4.9, Address: "Chinnakada Junction, Kollam", Capacity: 92, Hours: "24/7", Credits: 18, CategoryID: 2},
	{ID: 4, Name: "KSRTC Bus Stand Hub", Lat: 8.8962, Lng: 76.6211, Distance: "1.0 km", WasteTypes: []string{"plastic", "paper"}, Rating: 4.5, Address: "KSRTC Bus Stand, Kollam", Capacity: 45, Hours: "7 AM - 9 PM", Credits: 10, CategoryID: 5},
	{ID: 5, Name: "Polayathode EcoStation", Lat: 8.8752, Lng: 76.5891, Distance: "1.2 km", WasteTypes: []string{"metal", "textile"}, Rating: 4.7, Address: "Polayathode, Kollam", Capacity: 30, Hours: "24/7", Credits: 14, CategoryID: 4},
	{ID: 6, Name: "Kadappakada Recycle Hub", Lat: 8.9012, Lng: 76.6081, Distance: "1.5 km", WasteTypes: []string{"plastic", "metal"}, Rating: 4.4, Address: "Kadappakada, Kollam", Capacity: 55, Hours: "8 AM - 8 PM", Credits: 11, CategoryID: 4},
	{ID: 7, Name: "Thevally Green Center", Lat: 8.8672, Lng: 76.6181, Distance: "1.8 km", WasteTypes: []string{"paper", "textile"}, Rating: 4.3, Address: "Thevally, Kollam", Capacity: 40, Hours: "24/7", Credits: 9, CategoryID: 2},
	{ID: 8, Name: "Mundakkal Temple Hub", Lat: 8.8902, Lng: 76.5981, Distance: "2.0 km", WasteTypes: []string{"plastic", "paper", "textile"}, Rating: 4.6, Address: "Near Mundakkal Temple, Kollam", Capacity: 70, Hours: "5 AM - 11 PM", Credits: 16, CategoryID: 3},
}

// BinByID returns the bin location for an id, or false when it is unknown.
func BinByID(id int) (models.BinLocation, bool) {
	for _, b := range Bins {
		if b.ID == id {
			return b, true
		}
	}
	return models.BinLocation{}, false
}

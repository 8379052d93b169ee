package store

import (
	"context"

	"github.com/vibecart/vibe-commerce-api/internal/models"
)

// Fixture is the demo catalog. Integer ids double as insertion order.
func Fixture() []models.Product {
	return []models.Product{
		{
			ID:          1,
			Name:        "Wireless Bluetooth Headphones",
			Price:       79.99,
			Description: "Premium noise-cancelling wireless headphones with 30-hour battery life and superior sound quality.",
			Image:       "https://images.unsplash.com/photo-1505740420928-5e560c06d30e?w=500&h=500&fit=crop",
			Category:    "Electronics",
			Stock:       50,
		},
		{
			ID:          2,
			Name:        "Smart Fitness Watch",
			Price:       199.99,
			Description: "Track your fitness goals with this advanced smartwatch featuring heart rate monitoring and GPS.",
			Image:       "https://images.unsplash.com/photo-1523275335684-37898b6baf30?w=500&h=500&fit=crop",
			Category:    "Wearables",
			Stock:       35,
		},
		{
			ID:          3,
			Name:        "Portable Power Bank 20000mAh",
			Price:       39.99,
			Description: "High-capacity portable charger with fast charging support for all your devices.",
			Image:       "https://images.unsplash.com/photo-1609091839311-d5365f9ff1c5?w=500&h=500&fit=crop",
			Category:    "Accessories",
			Stock:       100,
		},
		{
			ID:          4,
			Name:        "4K Ultra HD Webcam",
			Price:       129.99,
			Description: "Professional webcam with 4K resolution, auto-focus, and built-in noise-cancelling microphone.",
			Image:       "https://images.unsplash.com/photo-1587826080692-f439cd0b70da?w=500&h=500&fit=crop",
			Category:    "Electronics",
			Stock:       25,
		},
		{
			ID:          5,
			Name:        "Mechanical Gaming Keyboard",
			Price:       149.99,
			Description: "RGB backlit mechanical keyboard with customizable keys and premium switches.",
			Image:       "https://images.unsplash.com/photo-1587829741301-dc798b83add3?w=500&h=500&fit=crop",
			Category:    "Gaming",
			Stock:       40,
		},
		{
			ID:          6,
			Name:        "Wireless Gaming Mouse",
			Price:       89.99,
			Description: "High-precision wireless gaming mouse with customizable DPI and programmable buttons.",
			Image:       "https://images.unsplash.com/photo-1527864550417-7fd91fc51a46?w=500&h=500&fit=crop",
			Category:    "Gaming",
			Stock:       60,
		},
		{
			ID:          7,
			Name:        "USB-C Hub Multi-Port Adapter",
			Price:       49.99,
			Description: "7-in-1 USB-C hub with HDMI, USB 3.0, SD card reader, and power delivery.",
			Image:       "https://images.unsplash.com/photo-1625948515291-69613efd103f?w=500&h=500&fit=crop",
			Category:    "Accessories",
			Stock:       80,
		},
		{
			ID:          8,
			Name:        "Laptop Stand Aluminum",
			Price:       34.99,
			Description: "Ergonomic aluminum laptop stand with adjustable height and ventilation design.",
			Image:       "https://images.unsplash.com/photo-1527864550417-7fd91fc51a46?w=500&h=500&fit=crop",
			Category:    "Accessories",
			Stock:       70,
		},
		{
			ID:          9,
			Name:        "Bluetooth Speaker Waterproof",
			Price:       59.99,
			Description: "Portable waterproof Bluetooth speaker with 360-degree sound and 12-hour battery.",
			Image:       "https://images.unsplash.com/photo-1608043152269-423dbba4e7e1?w=500&h=500&fit=crop",
			Category:    "Audio",
			Stock:       45,
		},
		{
			ID:          10,
			Name:        "Phone Tripod Stand",
			Price:       24.99,
			Description: "Flexible tripod stand for smartphones with Bluetooth remote and 360-degree rotation.",
			Image:       "https://images.unsplash.com/photo-1606229365485-93a3b8ee0385?w=500&h=500&fit=crop",
			Category:    "Accessories",
			Stock:       90,
		},
	}
}

// Seed wipes the catalog and loads the fixture. Runs at every startup so
// the demo always boots with a known product set.
func Seed(ctx context.Context, products ProductStore) (int, error) {
	fixture := Fixture()
	if err := products.ReplaceAll(ctx, fixture); err != nil {
		return 0, err
	}
	return len(fixture), nil
}

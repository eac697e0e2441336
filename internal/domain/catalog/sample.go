package catalog

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/xenking/harshita-store/internal/domain/product"
)

const (
	placeholderProductImage  = "/placeholder.svg?height=300&width=300"
	placeholderCategoryImage = "/placeholder.svg?height=200&width=200"
)

// sampleEpoch is the creation time of every built-in record.
var sampleEpoch = time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC)

func sampleProduct(id, name string, price int64, category, sub string, stock int, tags ...string) product.Product {
	return product.Product{
		ID:          id,
		Name:        name,
		Price:       decimal.NewFromInt(price),
		Category:    category,
		SubCategory: sub,
		Stock:       stock,
		ImageURL:    placeholderProductImage,
		Tags:        tags,
		IsActive:    true,
		IsAvailable: true,
		CreatedAt:   sampleEpoch,
	}
}

// SampleProducts returns the built-in product list served when the catalog
// source has nothing to offer. Each call returns a fresh slice.
func SampleProducts() []product.Product {
	return []product.Product{
		sampleProduct("sample-1", "Premium Basmati Rice (5kg)", 450, "Groceries", "Grains & Cereals", 25, "rice", "basmati", "premium", "groceries"),
		sampleProduct("sample-2", "Wheat Flour (10kg)", 380, "Groceries", "Grains & Cereals", 15, "wheat", "flour", "atta", "groceries"),
		sampleProduct("sample-3", "Sunflower Cooking Oil (1L)", 120, "Groceries", "Cooking Oil", 20, "oil", "cooking", "sunflower", "groceries"),
		sampleProduct("sample-4", "Mustard Oil (500ml)", 85, "Groceries", "Cooking Oil", 18, "oil", "mustard", "cooking", "groceries"),
		sampleProduct("sample-5", "Toor Dal (1kg)", 140, "Groceries", "Pulses & Lentils", 22, "dal", "toor", "pulses", "groceries"),
		sampleProduct("sample-6", "Moong Dal (1kg)", 160, "Groceries", "Pulses & Lentils", 16, "dal", "moong", "pulses", "groceries"),
		sampleProduct("sample-7", "Turmeric Powder (200g)", 45, "Groceries", "Spices & Seasonings", 30, "turmeric", "haldi", "spices", "groceries"),
		sampleProduct("sample-8", "Red Chili Powder (100g)", 35, "Groceries", "Spices & Seasonings", 25, "chili", "mirch", "spices", "groceries"),
		sampleProduct("sample-9", "Fresh Milk (1L)", 65, "Dairy", "Milk", 15, "milk", "fresh", "dairy", "organic"),
		sampleProduct("sample-10", "Greek Yogurt (400g)", 85, "Dairy", "Yogurt", 12, "yogurt", "greek", "dairy", "healthy"),
		sampleProduct("sample-11", "Mixed Namkeen (200g)", 55, "Snacks", "Traditional Snacks", 20, "namkeen", "snacks", "traditional", "spicy"),
		sampleProduct("sample-12", "Potato Chips (150g)", 40, "Snacks", "Chips & Crisps", 25, "chips", "potato", "snacks", "crispy"),
	}
}

func sampleCategory(id, name, description string, subs ...product.SubCategory) product.Category {
	return product.Category{
		ID:            id,
		Name:          name,
		Description:   description,
		ImageURL:      placeholderCategoryImage,
		SubCategories: subs,
		CreatedAt:     sampleEpoch,
	}
}

func sub(id, name string) product.SubCategory {
	return product.SubCategory{ID: id, Name: name}
}

// SampleCategories returns the built-in category list. Each call returns a
// fresh slice.
func SampleCategories() []product.Category {
	return []product.Category{
		sampleCategory("Z1IkRqWZcbWk2kVrI2n4", "Groceries",
			"Essential grocery items including grains, pulses, spices, and cooking essentials for your daily needs.",
			sub("grains", "Grains & Cereals"),
			sub("pulses", "Pulses & Lentils"),
			sub("spices", "Spices & Seasonings"),
			sub("oil", "Cooking Oil"),
		),
		sampleCategory("cat-dairy", "Dairy",
			"Fresh dairy products including milk, yogurt, cheese, and other dairy essentials.",
			sub("milk", "Milk"),
			sub("yogurt", "Yogurt"),
			sub("cheese", "Cheese"),
		),
		sampleCategory("cat-snacks", "Snacks",
			"Delicious snacks and munchies for every craving and occasion.",
			sub("traditional", "Traditional Snacks"),
			sub("chips", "Chips & Crisps"),
			sub("biscuits", "Biscuits & Cookies"),
		),
		sampleCategory("cat-fruits", "Fruits",
			"Fresh seasonal fruits sourced from local farms for the best quality and taste.",
			sub("fresh-fruits", "Fresh Fruits"),
			sub("seasonal", "Seasonal Fruits"),
		),
		sampleCategory("cat-vegetables", "Vegetables",
			"Farm-fresh vegetables delivered daily to ensure maximum freshness and nutrition.",
			sub("fresh-vegetables", "Fresh Vegetables"),
			sub("leafy-greens", "Leafy Greens"),
		),
		sampleCategory("cat-bakery", "Bakery",
			"Freshly baked bread, cakes, and pastries made daily in our local bakery.",
			sub("bread", "Bread"),
			sub("cakes", "Cakes"),
			sub("pastries", "Pastries"),
		),
	}
}

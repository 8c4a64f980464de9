package domain

import "fmt"

// Item is one card shown by the slider
type Item struct {
	ID          int    `toml:"id"`
	Title       string `toml:"title"`
	Description string `toml:"description"`
	Category    string `toml:"category"`
}

// Label returns the accessible label for the item at position index of total
func Label(index, total int) string {
	return fmt.Sprintf("carousel item %d of %d", index+1, total)
}

// DemoItems returns the sample deck used when no items are configured
func DemoItems() []Item {
	return []Item{
		{ID: 1, Title: "Modern Web Design", Description: "Beautiful and responsive web design principles", Category: "Design"},
		{ID: 2, Title: "React Development", Description: "Building modern applications with React", Category: "Development"},
		{ID: 3, Title: "TypeScript Mastery", Description: "Advanced TypeScript patterns and best practices", Category: "Development"},
		{ID: 4, Title: "UI/UX Excellence", Description: "Creating exceptional user experiences", Category: "Design"},
		{ID: 5, Title: "Performance Optimization", Description: "Making applications fast and efficient", Category: "Development"},
		{ID: 6, Title: "Mobile First", Description: "Designing for small screens before large ones", Category: "Design"},
		{ID: 7, Title: "Accessibility", Description: "Interfaces everyone can use", Category: "Design"},
		{ID: 8, Title: "Testing Strategies", Description: "Unit, integration and end-to-end testing", Category: "Quality"},
		{ID: 9, Title: "Continuous Delivery", Description: "Shipping small changes safely and often", Category: "Operations"},
		{ID: 10, Title: "Observability", Description: "Logs, metrics and traces that answer questions", Category: "Operations"},
		{ID: 11, Title: "API Design", Description: "Contracts that age gracefully", Category: "Development"},
		{ID: 12, Title: "Design Systems", Description: "Reusable components with a shared language", Category: "Design"},
	}
}

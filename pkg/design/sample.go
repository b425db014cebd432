package design

// SampleDesign returns the bundled e-commerce reference design: a ten part,
// twelve connection microservice architecture used by the "load sample"
// action and by tests. Each call returns fresh copies.
func SampleDesign() ([]Part, []Connection) {
	parts := []Part{
		{
			ID: 1, Type: "rest-api", Name: "Web Client", CustomColor: "#61DAFB",
			Functionality: "React-based web application serving the user interface",
			Technology:    "React 18", Version: "v2.1.0", Capacity: "10000 concurrent users",
			X: 200, Y: 100,
		},
		{
			ID: 2, Type: "api-gateway", Name: "API Gateway", CustomColor: "#FF4F00",
			Functionality: "Routes requests to microservices, handles authentication and rate limiting",
			Technology:    "Kong", Version: "v3.0", Capacity: "50000 req/s", SLA: "99.99% uptime",
			X: 600, Y: 100,
		},
		{
			ID: 3, Type: "microservice", Name: "User Service", CustomColor: "#FF6B6B",
			Functionality: "Manages user accounts, authentication, and profiles",
			Technology:    "Node.js", Version: "v1.5.0", Capacity: "5000 req/s",
			X: 300, Y: 300,
		},
		{
			ID: 4, Type: "microservice", Name: "Product Service", CustomColor: "#FF6B6B",
			Functionality: "Product catalog, inventory, and search functionality",
			Technology:    "Python FastAPI", Version: "v2.0.1", Capacity: "8000 req/s",
			X: 600, Y: 300,
		},
		{
			ID: 5, Type: "microservice", Name: "Order Service", CustomColor: "#FF6B6B",
			Functionality: "Order processing, payment integration, and fulfillment",
			Technology:    "Java Spring Boot", Version: "v1.8.2", Capacity: "3000 req/s",
			X: 900, Y: 300,
		},
		{
			ID: 6, Type: "postgresql", Name: "User DB", CustomColor: "#336791",
			Functionality: "Stores user profiles, authentication data, and preferences",
			Technology:    "PostgreSQL 15", Capacity: "100GB storage, 1000 connections",
			X: 300, Y: 500,
		},
		{
			ID: 7, Type: "mongodb", Name: "Product DB", CustomColor: "#47A248",
			Functionality: "Document store for product catalog with flexible schema",
			Technology:    "MongoDB 6.0", Capacity: "500GB storage",
			X: 600, Y: 500,
		},
		{
			ID: 8, Type: "postgresql", Name: "Order DB", CustomColor: "#336791",
			Functionality: "Transactional database for orders and payments",
			Technology:    "PostgreSQL 15", Capacity: "200GB storage",
			X: 900, Y: 500,
		},
		{
			ID: 9, Type: "redis", Name: "Cache Layer", CustomColor: "#DC382D",
			Functionality: "Caches frequently accessed data and session management",
			Technology:    "Redis 7.0", Capacity: "16GB memory, 100k ops/s",
			X: 1100, Y: 200,
		},
		{
			ID: 10, Type: "kafka", Name: "Event Stream", CustomColor: "#231F20",
			Functionality: "Event streaming for order events, inventory updates, and notifications",
			Technology:    "Kafka 3.4", Capacity: "1M messages/s",
			X: 1100, Y: 400,
		},
	}

	connections := []Connection{
		{From: 1, To: 2, ID: 1, LinkType: "data-flow", Color: "#3b82f6", StrokeWidth: 2, DashArray: ""},
		{From: 2, To: 3, ID: 2, LinkType: "data-flow", Color: "#3b82f6", StrokeWidth: 2, DashArray: ""},
		{From: 2, To: 4, ID: 3, LinkType: "data-flow", Color: "#3b82f6", StrokeWidth: 2, DashArray: ""},
		{From: 2, To: 5, ID: 4, LinkType: "data-flow", Color: "#3b82f6", StrokeWidth: 2, DashArray: ""},
		{From: 3, To: 6, ID: 5, LinkType: "data-flow", Color: "#3b82f6", StrokeWidth: 2, DashArray: ""},
		{From: 4, To: 7, ID: 6, LinkType: "data-flow", Color: "#3b82f6", StrokeWidth: 2, DashArray: ""},
		{From: 5, To: 8, ID: 7, LinkType: "data-flow", Color: "#3b82f6", StrokeWidth: 2, DashArray: ""},
		{From: 2, To: 9, ID: 8, LinkType: "data-flow", Color: "#3b82f6", StrokeWidth: 2, DashArray: ""},
		{From: 4, To: 9, ID: 9, LinkType: "dependency", Color: "#ef4444", StrokeWidth: 2, DashArray: "10,5"},
		{From: 5, To: 10, ID: 10, LinkType: "async-flow", Color: "#8b5cf6", StrokeWidth: 2, DashArray: "5,5"},
		{From: 4, To: 10, ID: 11, LinkType: "async-flow", Color: "#8b5cf6", StrokeWidth: 2, DashArray: "5,5"},
		{From: 5, To: 3, ID: 12, LinkType: "dependency", Color: "#ef4444", StrokeWidth: 2, DashArray: "10,5"},
	}

	return parts, connections
}

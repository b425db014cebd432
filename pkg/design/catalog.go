package design

import (
	"fmt"
	"time"
)

// DefaultComponentColor is the fallback color for unknown part types and new
// custom components.
const DefaultComponentColor = "#f3f4f6"

// BuiltinCategories returns the built-in component library. The result is a
// fresh slice; entries are immutable configuration.
func BuiltinCategories() []Category {
	return []Category{
		{
			ID:   "databases",
			Name: "Databases",
			Icon: "database",
			Components: []Component{
				{ID: "postgresql", Name: "PostgreSQL", Icon: "database", CustomColor: "#336791"},
				{ID: "mysql", Name: "MySQL", Icon: "database", CustomColor: "#4479A1"},
				{ID: "mongodb", Name: "MongoDB", Icon: "database", CustomColor: "#47A248"},
				{ID: "dynamodb", Name: "DynamoDB", Icon: "database", CustomColor: "#4053D6"},
				{ID: "cassandra", Name: "Cassandra", Icon: "database", CustomColor: "#1287B1"},
				{ID: "redis", Name: "Redis", Icon: "hard-drive", CustomColor: "#DC382D"},
				{ID: "memcached", Name: "Memcached", Icon: "hard-drive", CustomColor: "#1BA672"},
				{ID: "elasticsearch", Name: "Elasticsearch", Icon: "search", CustomColor: "#005571"},
			},
		},
		{
			ID:   "services",
			Name: "APIs & Services",
			Icon: "server",
			Components: []Component{
				{ID: "rest-api", Name: "REST API", Icon: "globe", CustomColor: "#61DAFB"},
				{ID: "graphql", Name: "GraphQL API", Icon: "network", CustomColor: "#E535AB"},
				{ID: "grpc", Name: "gRPC Service", Icon: "workflow", CustomColor: "#244C5A"},
				{ID: "microservice", Name: "Microservice", Icon: "boxes", CustomColor: "#FF6B6B"},
				{ID: "lambda", Name: "Lambda/Serverless", Icon: "cloud", CustomColor: "#FF9900"},
				{ID: "websocket", Name: "WebSocket", Icon: "message-square", CustomColor: "#010101"},
				{ID: "api-gateway", Name: "API Gateway", Icon: "server", CustomColor: "#FF4F00"},
			},
		},
		{
			ID:   "messaging",
			Name: "Message Systems",
			Icon: "message-square",
			Components: []Component{
				{ID: "rabbitmq", Name: "RabbitMQ", Icon: "message-square", CustomColor: "#FF6600"},
				{ID: "sqs", Name: "SQS", Icon: "message-square", CustomColor: "#FF9900"},
				{ID: "kafka", Name: "Kafka", Icon: "workflow", CustomColor: "#231F20"},
				{ID: "pubsub", Name: "Pub/Sub", Icon: "message-square", CustomColor: "#4285F4"},
				{ID: "event-bus", Name: "Event Bus", Icon: "git-branch", CustomColor: "#6B46C1"},
				{ID: "kinesis", Name: "Kinesis", Icon: "workflow", CustomColor: "#FF9900"},
			},
		},
		{
			ID:   "processing",
			Name: "Data Processing",
			Icon: "git-branch",
			Components: []Component{
				{ID: "etl-pipeline", Name: "ETL Pipeline", Icon: "git-branch", CustomColor: "#0066CC"},
				{ID: "data-lake", Name: "Data Lake", Icon: "database", CustomColor: "#00758F"},
				{ID: "stream-processor", Name: "Stream Processor", Icon: "zap", CustomColor: "#E25A1C"},
				{ID: "analytics", Name: "Analytics Engine", Icon: "bar-chart", CustomColor: "#669DF6"},
				{ID: "cdc", Name: "CDC Pipeline", Icon: "git-branch", CustomColor: "#FF6F61"},
				{ID: "data-warehouse", Name: "Data Warehouse", Icon: "hard-drive", CustomColor: "#4285F4"},
			},
		},
	}
}

// Catalog holds the built-in component categories plus a flat growable list
// of user-defined components.
type Catalog struct {
	categories []Category
	customs    []Component
}

// NewCatalog creates a catalog over the given built-in categories.
func NewCatalog(categories []Category) *Catalog {
	return &Catalog{categories: categories}
}

// Categories returns the built-in categories in library order.
func (c *Catalog) Categories() []Category { return c.categories }

// Customs returns the user-defined components.
func (c *Catalog) Customs() []Component {
	out := make([]Component, len(c.customs))
	copy(out, c.customs)
	return out
}

// AllComponents flattens every built-in category followed by the customs.
func (c *Catalog) AllComponents() []Component {
	var out []Component
	for _, cat := range c.categories {
		out = append(out, cat.Components...)
	}
	return append(out, c.customs...)
}

// Lookup finds a component template by type id.
func (c *Catalog) Lookup(id string) (Component, bool) {
	for _, comp := range c.AllComponents() {
		if comp.ID == id {
			return comp, true
		}
	}
	return Component{}, false
}

// ColorFor returns the default color for a part type. Unknown types fall
// back to DefaultComponentColor.
func (c *Catalog) ColorFor(typeID string) string {
	if comp, ok := c.Lookup(typeID); ok {
		return comp.CustomColor
	}
	return DefaultComponentColor
}

// AddCustom appends a user-defined component.
func (c *Catalog) AddCustom(comp Component) {
	c.customs = append(c.customs, comp)
}

// RemoveCustom removes a user-defined component by id.
func (c *Catalog) RemoveCustom(id string) {
	for i, comp := range c.customs {
		if comp.ID == id {
			c.customs = append(c.customs[:i], c.customs[i+1:]...)
			return
		}
	}
}

// SetCustoms replaces the custom component list (import path).
func (c *Catalog) SetCustoms(customs []Component) {
	c.customs = make([]Component, len(customs))
	copy(c.customs, customs)
}

// NewCustomComponent builds a component with a timestamp-derived id, the
// generic wrench icon, and the default color when none is given.
func NewCustomComponent(name, color string) Component {
	if color == "" {
		color = DefaultComponentColor
	}
	return Component{
		ID:          fmt.Sprintf("custom-%d", time.Now().UnixMilli()),
		Name:        name,
		Icon:        "wrench",
		CustomColor: color,
	}
}

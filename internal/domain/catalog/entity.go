package catalog

import (
	"errors"
	"strings"
)

var ErrNotFound = errors.New("service not found in catalog")

// ServiceDefinition is immutable once loaded for a scheduling or report run;
// the catalog is refreshed periodically from its record source.
type ServiceDefinition struct {
	Name            string
	PriceMinor      int64
	DurationMinutes int
	Description     string
}

// RawService is a catalog row as read from the record store, with price and
// duration still in their free-text form.
type RawService struct {
	Name        string
	Price       string
	Duration    string
	Description string
}

type Catalog struct {
	services map[string]ServiceDefinition
	order    []string
}

// Load parses raw catalog rows. Parse failures are recovered with documented
// defaults and reported through the returned ParseReport so callers can log
// and count them instead of mistaking them for real values.
func Load(raw []RawService) (*Catalog, []ParseReport) {
	c := &Catalog{services: make(map[string]ServiceDefinition, len(raw))}
	var reports []ParseReport

	for _, r := range raw {
		name := strings.TrimSpace(r.Name)
		if name == "" {
			continue
		}
		duration, durationDefaulted := ParseDurationMinutes(r.Duration)
		price, priceDefaulted := ParsePriceMinor(r.Price)
		if durationDefaulted {
			reports = append(reports, ParseReport{Service: name, Field: "duration", Raw: r.Duration, Default: int64(duration)})
		}
		if priceDefaulted {
			reports = append(reports, ParseReport{Service: name, Field: "price", Raw: r.Price, Default: price})
		}
		if _, exists := c.services[name]; !exists {
			c.order = append(c.order, name)
		}
		c.services[name] = ServiceDefinition{
			Name:            name,
			PriceMinor:      price,
			DurationMinutes: duration,
			Description:     strings.TrimSpace(r.Description),
		}
	}
	return c, reports
}

// ParseReport records a ConfigurationDefault recovery: a catalog field that
// could not be parsed and was substituted with its documented default.
type ParseReport struct {
	Service string
	Field   string
	Raw     string
	Default int64
}

func (c *Catalog) Lookup(name string) (ServiceDefinition, error) {
	def, ok := c.services[strings.TrimSpace(name)]
	if !ok {
		return ServiceDefinition{}, ErrNotFound
	}
	return def, nil
}

// DurationOrDefault resolves a recorded service name to its duration, falling
// back to the given default when the name is no longer in the catalog. The
// lenient fallback keeps old bookings schedulable after a menu change.
func (c *Catalog) DurationOrDefault(name string, defaultMinutes int) int {
	if def, err := c.Lookup(name); err == nil {
		return def.DurationMinutes
	}
	return defaultMinutes
}

// Names returns service names in catalog order.
func (c *Catalog) Names() []string {
	names := make([]string, len(c.order))
	copy(names, c.order)
	return names
}

func (c *Catalog) Len() int {
	return len(c.services)
}

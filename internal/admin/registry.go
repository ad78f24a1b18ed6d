// Package admin holds the static per-resource panel configuration:
// navigation metadata, route segments, and globally searchable attributes.
// The registry is built once at process start and never mutated.
package admin

type Resource struct {
	Name            string   `json:"name"`
	Segment         string   `json:"segment"`
	NavigationGroup string   `json:"navigation_group"`
	NavigationIcon  string   `json:"navigation_icon"`
	NavigationSort  int      `json:"navigation_sort"`
	RecordTitle     string   `json:"record_title"`
	GlobalSearch    []string `json:"global_search,omitempty"`
}

var registry = []Resource{
	{
		Name:            "brand",
		Segment:         "brands",
		NavigationGroup: "Shop",
		NavigationIcon:  "rectangle-stack",
		NavigationSort:  1,
		RecordTitle:     "name",
		GlobalSearch:    []string{"name", "slug", "description"},
	},
	{
		Name:            "customer",
		Segment:         "customers",
		NavigationGroup: "Shop",
		NavigationIcon:  "user-group",
		NavigationSort:  2,
		RecordTitle:     "name",
		GlobalSearch:    []string{"name", "email"},
	},
	{
		Name:            "order",
		Segment:         "orders",
		NavigationGroup: "Shop",
		NavigationIcon:  "shopping-bag",
		NavigationSort:  3,
		RecordTitle:     "number",
		GlobalSearch:    []string{"number"},
	},
	{
		Name:            "product",
		Segment:         "products",
		NavigationGroup: "Shop",
		NavigationIcon:  "bolt",
		NavigationSort:  4,
		RecordTitle:     "name",
		GlobalSearch:    []string{"name", "slug", "sku"},
	},
	{
		Name:            "category",
		Segment:         "categories",
		NavigationGroup: "Shop",
		NavigationIcon:  "tag",
		NavigationSort:  5,
		RecordTitle:     "name",
	},
}

// Registry returns the resource table in navigation order.
func Registry() []Resource {
	out := make([]Resource, len(registry))
	copy(out, registry)
	return out
}

func BySegment(segment string) (Resource, bool) {
	for _, r := range registry {
		if r.Segment == segment {
			return r, true
		}
	}
	return Resource{}, false
}

// GloballySearchable lists the resources that take part in global search.
func GloballySearchable() []Resource {
	var out []Resource
	for _, r := range registry {
		if len(r.GlobalSearch) > 0 {
			out = append(out, r)
		}
	}
	return out
}

package edamam

// SearchResponse mirrors the JSON envelope returned by a recipe search call.
type SearchResponse struct {
	Query string `json:"q"`
	From  int    `json:"from"`
	To    int    `json:"to"`
	Count int    `json:"count"`
	More  bool   `json:"more"`
	Hits  []Hit  `json:"hits"`
}

// Hit wraps a single recipe record in the response hit list.
type Hit struct {
	Recipe Recipe `json:"recipe"`
}

// Recipe is the read-only record returned by the provider. Fields are kept
// verbatim; the application never mutates them.
type Recipe struct {
	URI             string              `json:"uri"`
	Label           string              `json:"label"`
	Image           string              `json:"image"`
	Source          string              `json:"source"`
	URL             string              `json:"url"`
	Yield           float64             `json:"yield"`
	Calories        float64             `json:"calories"`
	TotalWeight     float64             `json:"totalWeight"`
	IngredientLines []string            `json:"ingredientLines"`
	DietLabels      []string            `json:"dietLabels"`
	HealthLabels    []string            `json:"healthLabels"`
	TotalNutrients  map[string]Nutrient `json:"totalNutrients"`
}

// Nutrient is one entry of the totalNutrients map (e.g. "FAT", "CHOCDF").
type Nutrient struct {
	Label    string  `json:"label"`
	Quantity float64 `json:"quantity"`
	Unit     string  `json:"unit"`
}

// ID returns a stable identity for the recipe within one response. The
// provider URI is canonical; the recipe URL serves as a fallback for
// responses that omit it.
func (r Recipe) ID() string {
	if r.URI != "" {
		return r.URI
	}
	return r.URL
}

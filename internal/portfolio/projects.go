package portfolio

// Project is a showcased portfolio piece. Link is nil when the project has
// no external page.
type Project struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Image       string   `json:"image"`
	Tags        []string `json:"tags"`
	Link        *string  `json:"link"`
}

func link(s string) *string { return &s }

// catalogue is compiled-in sample data, never mutated.
var catalogue = [...]Project{
	{
		Title:       "Neon Dreams",
		Description: "Exploration of light and shadow in a cyberpunk palette.",
		Image:       "https://images.unsplash.com/photo-1517816743773-6e0fd518b4a6?q=80&w=1600&auto=format&fit=crop",
		Tags:        []string{"3D", "Concept", "Futuristic"},
		Link:        link("#"),
	},
	{
		Title:       "Waves of Code",
		Description: "Generative art driven by audio-reactive algorithms.",
		Image:       "https://images.unsplash.com/photo-1517694712202-14dd9538aa97?q=80&w=1600&auto=format&fit=crop",
		Tags:        []string{"Generative", "WebGL"},
		Link:        link("#"),
	},
	{
		Title:       "Celestial Forms",
		Description: "Parametric sculptures inspired by orbital mechanics.",
		Image:       "https://images.unsplash.com/photo-1549880338-65ddcdfd017b?q=80&w=1600&auto=format&fit=crop",
		Tags:        []string{"Sculpt", "Parametric"},
		Link:        link("#"),
	},
}

// Projects returns the catalogue in declaration order. The result is a deep
// copy; callers may modify it freely.
func Projects() []Project {
	out := make([]Project, len(catalogue))
	for i, p := range catalogue {
		cp := p
		cp.Tags = append([]string{}, p.Tags...)
		if p.Link != nil {
			cp.Link = link(*p.Link)
		}
		out[i] = cp
	}
	return out
}

// Package catalog holds the static career profiles the platform advises on.
package catalog

// Profile describes one target career: its display metadata, the skills and
// programming languages the role requires, and market figures used in prompts
// and fallback content.
type Profile struct {
	ID            string
	Title         string
	Description   string
	Skills        []string
	Languages     []string
	SalaryRange   string
	GrowthOutlook string
}

// Summary is the reduced profile shape returned by the careers list endpoint.
type Summary struct {
	ID                 string   `json:"id"`
	Name               string   `json:"name"`
	Description        string   `json:"description"`
	AverageSalaryRange string   `json:"average_salary_range"`
	GrowthOutlook      string   `json:"growth_outlook"`
	KeyTechnologies    []string `json:"key_technologies"`
}

// DefaultCareer is used whenever a caller supplies an unknown career id.
const DefaultCareer = "fullstack"

// keyTechnologyCount is how many leading skills a Summary exposes.
const keyTechnologyCount = 4

// Catalog is an immutable lookup table of career profiles. Construct it once
// at startup and pass it to the components that need it.
type Catalog struct {
	order    []string
	profiles map[string]Profile
}

// New builds the catalog with the fixed career set in declaration order.
func New() *Catalog {
	defs := []Profile{
		{
			ID:            "fullstack",
			Title:         "Full-Stack Developer",
			Description:   "Build complete web applications with frontend and backend technologies",
			Skills:        []string{"JavaScript", "React", "Node.js", "Database", "APIs", "HTML/CSS"},
			Languages:     []string{"JavaScript", "Python", "SQL"},
			SalaryRange:   "$70,000 - $130,000",
			GrowthOutlook: "High Demand",
		},
		{
			ID:            "frontend",
			Title:         "Frontend Developer",
			Description:   "Specialize in user interface and client-side development",
			Skills:        []string{"HTML/CSS", "JavaScript", "React", "TypeScript", "UI/UX"},
			Languages:     []string{"JavaScript", "TypeScript"},
			SalaryRange:   "$60,000 - $120,000",
			GrowthOutlook: "High Demand",
		},
		{
			ID:            "backend",
			Title:         "Backend Developer",
			Description:   "Focus on server-side logic and database management",
			Skills:        []string{"Node.js", "Python", "Java", "Database", "APIs", "Authentication"},
			Languages:     []string{"JavaScript", "Python", "Java", "C#"},
			SalaryRange:   "$75,000 - $140,000",
			GrowthOutlook: "High Demand",
		},
		{
			ID:            "datascience",
			Title:         "Data Scientist",
			Description:   "Analyze data and build machine learning models",
			Skills:        []string{"Python", "Statistics", "Machine Learning", "SQL", "Data Visualization"},
			Languages:     []string{"Python", "R", "SQL"},
			SalaryRange:   "$80,000 - $150,000",
			GrowthOutlook: "Very High Demand",
		},
		{
			ID:            "machinelearning",
			Title:         "Machine Learning Engineer",
			Description:   "Design and implement AI models and systems",
			Skills:        []string{"Python", "Machine Learning", "Deep Learning", "TensorFlow", "Data Engineering"},
			Languages:     []string{"Python", "C++"},
			SalaryRange:   "$90,000 - $160,000",
			GrowthOutlook: "Very High Demand",
		},
		{
			ID:            "mobile",
			Title:         "Mobile Developer",
			Description:   "Build applications for iOS and Android platforms",
			Skills:        []string{"React Native", "Swift", "Kotlin", "Mobile UI", "APIs"},
			Languages:     []string{"JavaScript", "Swift", "Kotlin", "Java"},
			SalaryRange:   "$65,000 - $130,000",
			GrowthOutlook: "High Demand",
		},
		{
			ID:            "devops",
			Title:         "DevOps Engineer",
			Description:   "Manage deployment, infrastructure, and CI/CD pipelines",
			Skills:        []string{"Docker", "Kubernetes", "AWS", "CI/CD", "Linux"},
			Languages:     []string{"Python", "JavaScript", "Bash"},
			SalaryRange:   "$85,000 - $150,000",
			GrowthOutlook: "High Demand",
		},
	}

	c := &Catalog{
		order:    make([]string, 0, len(defs)),
		profiles: make(map[string]Profile, len(defs)),
	}
	for _, p := range defs {
		c.order = append(c.order, p.ID)
		c.profiles[p.ID] = p
	}
	return c
}

// Lookup returns the profile for id, falling back to the fullstack profile
// when id is unknown or empty. It never fails.
func (c *Catalog) Lookup(id string) Profile {
	if p, ok := c.profiles[id]; ok {
		return p
	}
	return c.profiles[DefaultCareer]
}

// List returns career summaries in declaration order.
func (c *Catalog) List() []Summary {
	summaries := make([]Summary, 0, len(c.order))
	for _, id := range c.order {
		p := c.profiles[id]
		techs := p.Skills
		if len(techs) > keyTechnologyCount {
			techs = techs[:keyTechnologyCount]
		}
		summaries = append(summaries, Summary{
			ID:                 p.ID,
			Name:               p.Title,
			Description:        p.Description,
			AverageSalaryRange: p.SalaryRange,
			GrowthOutlook:      p.GrowthOutlook,
			KeyTechnologies:    techs,
		})
	}
	return summaries
}

// IDs returns the career ids in declaration order.
func (c *Catalog) IDs() []string {
	ids := make([]string, len(c.order))
	copy(ids, c.order)
	return ids
}

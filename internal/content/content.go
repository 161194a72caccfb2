// Package content holds the bilingual text of the portfolio page.
//
// Each language is decoded from an embedded YAML file into the same typed
// Content record, and the resulting Table is checked for symmetry: a field
// that is filled in for one language must be filled in for every language,
// and every list must have the same length everywhere.
package content

// Content is the full text of the page in one language.
type Content struct {
	Nav        Nav        `yaml:"nav"`
	Hero       Hero       `yaml:"hero"`
	About      About      `yaml:"about"`
	Skills     Skills     `yaml:"skills"`
	Experience Experience `yaml:"experience"`
	Education  Education  `yaml:"education"`
	Contact    Contact    `yaml:"contact"`
	Errors     Errors     `yaml:"errors"`
}

type Nav struct {
	Home       string `yaml:"home"`
	About      string `yaml:"about"`
	Skills     string `yaml:"skills"`
	Experience string `yaml:"experience"`
	Education  string `yaml:"education"`
	Contact    string `yaml:"contact"`
	Menu       string `yaml:"menu"`
}

type Hero struct {
	Name         string `yaml:"name"`
	Title        string `yaml:"title"`
	Subtitle     string `yaml:"subtitle"`
	Description  string `yaml:"description"`
	ViewProjects string `yaml:"view_projects"`
	Contact      string `yaml:"contact"`
	Scroll       string `yaml:"scroll"`
}

type About struct {
	Title          string   `yaml:"title"`
	TitleHighlight string   `yaml:"title_highlight"`
	Paragraphs     []string `yaml:"paragraphs"`
	Highlights     []string `yaml:"highlights"`
	ImageAlt       string   `yaml:"image_alt"`
}

type Skills struct {
	Title          string     `yaml:"title"`
	TitleHighlight string     `yaml:"title_highlight"`
	Categories     []Category `yaml:"categories"`
	Items          []Skill    `yaml:"items"`
}

// Category groups skills; Key is shared across languages.
type Category struct {
	Key   string `yaml:"key"`
	Label string `yaml:"label"`
}

type Skill struct {
	Name        string `yaml:"name"`
	Category    string `yaml:"category"`
	Icon        string `yaml:"icon"`
	Description string `yaml:"description"`
}

type Experience struct {
	Title               string  `yaml:"title"`
	TitleHighlight      string  `yaml:"title_highlight"`
	Subtitle            string  `yaml:"subtitle"`
	AchievementsHeading string  `yaml:"achievements_heading"`
	TechnologiesHeading string  `yaml:"technologies_heading"`
	Entries             []Entry `yaml:"entries"`
}

// Entry is one work-history record.
type Entry struct {
	Title        string   `yaml:"title"`
	Company      string   `yaml:"company"`
	Period       string   `yaml:"period"`
	Location     string   `yaml:"location"`
	Type         string   `yaml:"type"`
	Description  string   `yaml:"description"`
	Achievements []string `yaml:"achievements"`
	Technologies []string `yaml:"technologies"`
	Current      bool     `yaml:"current"`
}

type Education struct {
	Title   string   `yaml:"title"`
	Entries []Course `yaml:"entries"`
}

type Course struct {
	Title       string   `yaml:"title"`
	Institution string   `yaml:"institution"`
	Period      string   `yaml:"period"`
	Location    string   `yaml:"location"`
	Type        string   `yaml:"type"`
	Skills      []string `yaml:"skills"`
	Current     bool     `yaml:"current"`
}

type Contact struct {
	Title          string `yaml:"title"`
	TitleHighlight string `yaml:"title_highlight"`
	Description    string `yaml:"description"`
	SendEmail      string `yaml:"send_email"`
	DownloadCV     string `yaml:"download_cv"`
	WriteMe        string `yaml:"write_me"`
	Footer         string `yaml:"footer"`
	Form           Form   `yaml:"form"`
}

type Form struct {
	Title   string `yaml:"title"`
	Name    string `yaml:"name"`
	Email   string `yaml:"email"`
	Message string `yaml:"message"`
	Submit  string `yaml:"submit"`
	Sent    string `yaml:"sent"`
	Failed  string `yaml:"failed"`
	Invalid string `yaml:"invalid"`
}

type Errors struct {
	Unavailable string `yaml:"unavailable"`
}

// SkillGroup is a category with the skills that belong to it.
type SkillGroup struct {
	Category Category
	Skills   []Skill
}

// ByCategory groups the skill items in category order. Skills with
// an unknown category key are dropped.
func (s Skills) ByCategory() []SkillGroup {
	groups := make([]SkillGroup, 0, len(s.Categories))
	for _, cat := range s.Categories {
		g := SkillGroup{Category: cat}
		for _, sk := range s.Items {
			if sk.Category == cat.Key {
				g.Skills = append(g.Skills, sk)
			}
		}
		groups = append(groups, g)
	}
	return groups
}

package entity

type Badge struct {
	Text   string `yaml:"text"`
	Accent string `yaml:"accent"`
}

type Link struct {
	Label   string `yaml:"label" validate:"required"`
	Href    string `yaml:"href" validate:"required"`
	Primary bool   `yaml:"primary"`
}

type Stat struct {
	Icon   string `yaml:"icon"`
	Label  string `yaml:"label"`
	Value  string `yaml:"value"`
	Accent string `yaml:"accent"`
}

type Hero struct {
	Brand     string   `yaml:"brand"`
	BrandIcon string   `yaml:"brand_icon"`
	Badges    []Badge  `yaml:"badges"`
	Kicker    string   `yaml:"kicker"`
	Headline  []string `yaml:"headline"`
	Subhead   string   `yaml:"subhead"`
	Actions   []Link   `yaml:"actions" validate:"dive"`
	Stats     []Stat   `yaml:"stats"`
}

type RecommendationItem struct {
	Label string `yaml:"label"`
	Text  string `yaml:"text"`
}

// Recommendation is hand-authored guidance. It is never derived from plan data.
type Recommendation struct {
	Badge    string               `yaml:"badge"`
	Heading  string               `yaml:"heading"`
	Intro    string               `yaml:"intro"`
	Items    []RecommendationItem `yaml:"items"`
	Footnote string               `yaml:"footnote"`
}

type Footer struct {
	Heading   string `yaml:"heading"`
	Text      string `yaml:"text"`
	Contacts  []Link `yaml:"contacts" validate:"dive"`
	Fineprint string `yaml:"fineprint"`
}

type Catalog struct {
	Hero           Hero           `yaml:"hero"`
	Groups         []PlanGroup    `yaml:"groups" validate:"dive"`
	Recommendation Recommendation `yaml:"recommendation"`
	Footer         Footer         `yaml:"footer"`
}

func (c *Catalog) Group(id string) (*PlanGroup, bool) {
	for i := range c.Groups {
		if c.Groups[i].ID == id {
			return &c.Groups[i], true
		}
	}
	return nil, false
}

func (c *Catalog) PlanCount() int {
	n := 0
	for _, g := range c.Groups {
		n += len(g.Plans)
	}
	return n
}

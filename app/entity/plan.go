package entity

type Feature struct {
	Icon  string `yaml:"icon" json:"icon"`
	Label string `yaml:"label" json:"label" validate:"required"`
	Value string `yaml:"value" json:"value"`
}

type PlanEntry struct {
	Title        string    `yaml:"title" validate:"required_without=Spec"`
	Subtitle     string    `yaml:"subtitle"`
	PriceLabel   string    `yaml:"price" validate:"required"`
	EmphasisIcon string    `yaml:"icon"`
	Features     []Feature `yaml:"features" validate:"dive"`
	Highlighted  bool      `yaml:"highlighted"`
	TagText      string    `yaml:"tag"`
	Spec         string    `yaml:"spec"`
}

func (p PlanEntry) IsFlat() bool {
	return len(p.Features) == 0 && p.Spec != ""
}

type PlanGroup struct {
	ID          string      `yaml:"id" validate:"required"`
	Heading     string      `yaml:"heading" validate:"required"`
	Tag         string      `yaml:"tag"`
	Description string      `yaml:"description"`
	Layout      string      `yaml:"layout" validate:"omitempty,oneof=pair triple quad wide"`
	Accent      string      `yaml:"accent"`
	Callout     string      `yaml:"callout"`
	Badges      []string    `yaml:"badges"`
	Notes       []string    `yaml:"notes"`
	Plans       []PlanEntry `yaml:"plans" validate:"dive"`
}

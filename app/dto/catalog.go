package dto

type FeatureResponse struct {
	Icon  string `json:"icon,omitempty"`
	Label string `json:"label"`
	Value string `json:"value"`
}

type PlanResponse struct {
	Title       string            `json:"title,omitempty"`
	Subtitle    string            `json:"subtitle,omitempty"`
	Price       string            `json:"price"`
	Icon        string            `json:"icon,omitempty"`
	Features    []FeatureResponse `json:"features"`
	Spec        string            `json:"spec,omitempty"`
	Highlighted bool              `json:"highlighted"`
	Tag         string            `json:"tag,omitempty"`
}

type PlanGroupResponse struct {
	ID          string         `json:"id"`
	Heading     string         `json:"heading"`
	Tag         string         `json:"tag,omitempty"`
	Description string         `json:"description,omitempty"`
	Layout      string         `json:"layout"`
	Plans       []PlanResponse `json:"plans"`
}

type ListPlanGroupsResponse struct {
	Groups []PlanGroupResponse `json:"groups"`
}

type PlanGroupEnvelopeResponse struct {
	Group PlanGroupResponse `json:"group"`
}

type HealthResponse struct {
	Status string `json:"status"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}

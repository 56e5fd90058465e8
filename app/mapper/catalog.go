package mapper

import (
	"github.com/vibast-solutions/ms-go-vps-showcase/app/dto"
	"github.com/vibast-solutions/ms-go-vps-showcase/app/entity"
	"github.com/vibast-solutions/ms-go-vps-showcase/app/render"
	"google.golang.org/protobuf/types/known/structpb"
)

func PlanGroupToResponse(item *entity.PlanGroup) *dto.PlanGroupResponse {
	if item == nil {
		return nil
	}

	resp := &dto.PlanGroupResponse{
		ID:          item.ID,
		Heading:     item.Heading,
		Tag:         item.Tag,
		Description: item.Description,
		Layout:      render.LayoutFor(item.Layout).Name,
		Plans:       make([]dto.PlanResponse, 0, len(item.Plans)),
	}
	for _, p := range item.Plans {
		resp.Plans = append(resp.Plans, planToResponse(p))
	}
	return resp
}

func PlanGroupsToResponse(items []*entity.PlanGroup) []dto.PlanGroupResponse {
	result := make([]dto.PlanGroupResponse, 0, len(items))
	for _, item := range items {
		if resp := PlanGroupToResponse(item); resp != nil {
			result = append(result, *resp)
		}
	}
	return result
}

func PlanGroupToProto(item *entity.PlanGroup) (*structpb.Struct, error) {
	if item == nil {
		return nil, nil
	}

	resp := PlanGroupToResponse(item)
	plans := make([]interface{}, 0, len(resp.Plans))
	for _, p := range resp.Plans {
		plans = append(plans, planToMap(p))
	}

	return structpb.NewStruct(map[string]interface{}{
		"id":          resp.ID,
		"heading":     resp.Heading,
		"tag":         resp.Tag,
		"description": resp.Description,
		"layout":      resp.Layout,
		"plans":       plans,
	})
}

func PlanGroupsToProto(items []*entity.PlanGroup) (*structpb.ListValue, error) {
	result := &structpb.ListValue{Values: make([]*structpb.Value, 0, len(items))}
	for _, item := range items {
		s, err := PlanGroupToProto(item)
		if err != nil {
			return nil, err
		}
		if s == nil {
			continue
		}
		result.Values = append(result.Values, structpb.NewStructValue(s))
	}
	return result, nil
}

func planToResponse(p entity.PlanEntry) dto.PlanResponse {
	resp := dto.PlanResponse{
		Title:       p.Title,
		Subtitle:    p.Subtitle,
		Price:       p.PriceLabel,
		Icon:        p.EmphasisIcon,
		Features:    make([]dto.FeatureResponse, 0, len(p.Features)),
		Spec:        p.Spec,
		Highlighted: p.Highlighted,
		Tag:         p.TagText,
	}
	for _, f := range p.Features {
		resp.Features = append(resp.Features, dto.FeatureResponse{Icon: f.Icon, Label: f.Label, Value: f.Value})
	}
	return resp
}

func planToMap(p dto.PlanResponse) map[string]interface{} {
	features := make([]interface{}, 0, len(p.Features))
	for _, f := range p.Features {
		features = append(features, map[string]interface{}{
			"icon":  f.Icon,
			"label": f.Label,
			"value": f.Value,
		})
	}

	return map[string]interface{}{
		"title":       p.Title,
		"subtitle":    p.Subtitle,
		"price":       p.Price,
		"icon":        p.Icon,
		"features":    features,
		"spec":        p.Spec,
		"highlighted": p.Highlighted,
		"tag":         p.Tag,
	}
}

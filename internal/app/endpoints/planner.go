package endpoints

import (
	"context"
	"errors"
	"fmt"

	"github.com/cnwoye/itinerary-planner-service/internal/app/dto"
	"github.com/go-kit/kit/endpoint"
)

type PlannerService interface {
	PlanItinerary(ctx context.Context, req dto.PlanItineraryRequest) (dto.PlanItineraryResponse, error)
}

type Endpoints struct {
	PlannerEndpoint PlannerEndpoint
}

type PlannerEndpoint struct {
	PlanItinerary endpoint.Endpoint
}

func MakePlannerEndpoint(service PlannerService) PlannerEndpoint {
	return PlannerEndpoint{
		PlanItinerary: makePlanItineraryEndpoint(service),
	}
}

func makePlanItineraryEndpoint(service PlannerService) endpoint.Endpoint {
	return func(ctx context.Context, req interface{}) (interface{}, error) {
		request, ok := req.(*dto.PlanItineraryRequest)
		if !ok || request == nil {
			return nil, errors.New("invalid type")
		}

		response, err := service.PlanItinerary(ctx, *request)
		if err != nil {
			return nil, fmt.Errorf("planner service: %w", err)
		}

		return response, nil
	}
}

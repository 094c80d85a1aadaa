// SPDX-License-Identifier: MIT

package openapi_server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"sync"

	"github.com/natevvv/osm-turn-routing/pkg/graph"
	"github.com/natevvv/osm-turn-routing/pkg/routing"
	"github.com/natevvv/osm-turn-routing/pkg/turn"
)

// DefaultApiService is a service that implements the logic for the DefaultApiServicer
// This service should implement the business logic for every endpoint for the DefaultApi API.
// Include any external packages or services that will be required by this service.
type DefaultApiService struct {
	router *routing.Router
	config NavigatorConfig
}

// NewDefaultApiService creates a default api service
func NewDefaultApiService(router *routing.Router, config NavigatorConfig) DefaultApiServicer {
	return &DefaultApiService{
		router: router,
		config: config,
	}
}

// Load the graph and the penalty table and create a router for them.
// Without a penalty file the penalties are computed from the graph with the given options.
func NewRouterFromFiles(graphFile, penaltyFile string, options turn.PenaltyOptions, navigator string) (*routing.Router, error) {
	var g *graph.AdjacencyArrayGraph
	var penalties turn.PenaltyTable
	var graphErr, penaltyErr error

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		g, graphErr = graph.NewAdjacencyArrayFromFmiFile(graphFile)
		wg.Done()
	}()
	if penaltyFile != "" {
		wg.Add(1)
		go func() {
			penalties, penaltyErr = turn.ReadPenaltyFile(penaltyFile)
			wg.Done()
		}()
	}
	wg.Wait()

	if graphErr != nil {
		return nil, fmt.Errorf("read graph %v: %w", graphFile, graphErr)
	}
	if penaltyErr != nil {
		return nil, fmt.Errorf("read penalties %v: %w", penaltyFile, penaltyErr)
	}
	if penaltyFile == "" {
		var err error
		if penalties, err = turn.BuildPenaltyTable(g, options); err != nil {
			return nil, err
		}
	}

	return routing.NewRouter(g, penalties, navigator)
}

// ComputeRoute - Compute a new route
func (s *DefaultApiService) ComputeRoute(ctx context.Context, routeRequest RouteRequest) (ImplResponse, error) {
	routeConfig := routing.RouteConfig{
		VehicleType:    s.config.VehicleType,
		PreferHighway:  s.config.PreferHighway,
		MaxSpeed:       routeRequest.MaxSpeed,
		AvoidRoadTypes: routeRequest.AvoidRoadTypes,
	}
	if routeRequest.VehicleType != "" {
		routeConfig.VehicleType = routeRequest.VehicleType
	}
	if routeRequest.PreferHighway != nil {
		routeConfig.PreferHighway = *routeRequest.PreferHighway
	}

	route, err := s.router.ComputeRoute(routeRequest.Origin.toGeometry(), routeRequest.Destination.toGeometry(), routeConfig)
	if errors.Is(err, routing.ErrUnknownVehicle) {
		return Response(http.StatusBadRequest, err.Error()), nil
	} else if err != nil {
		return Response(http.StatusInternalServerError, nil), err
	}

	routeResult := RouteResult{Origin: *routeRequest.Origin, Destination: *routeRequest.Destination, Reachable: route.Exists}
	if route.Exists {
		maneuvers := make([]Maneuver, 0, len(route.Maneuvers))
		for _, m := range route.Maneuvers {
			maneuvers = append(maneuvers, Maneuver{Location: makePoint(m.Location), Direction: m.Direction.String(), Penalty: m.Penalty})
		}
		routeResult.Path = &Path{
			Length:     int32(route.Length),
			TravelTime: route.TravelTime,
			Waypoints:  makePoints(route.Waypoints),
			Maneuvers:  maneuvers,
			Geometry:   route.GeoJSON(),
		}
	}

	return Response(http.StatusOK, routeResult), nil
}

func (s *DefaultApiService) GetNodes(ctx context.Context) (ImplResponse, error) {
	nodes := Nodes{Waypoints: makePoints(s.router.GetNodes())}
	return Response(http.StatusOK, nodes), nil
}

func (s *DefaultApiService) GetSearchSpace(ctx context.Context) (ImplResponse, error) {
	nodes := Nodes{Waypoints: makePoints(s.router.GetSearchSpace())}
	return Response(http.StatusOK, nodes), nil
}

func (s *DefaultApiService) SetNavigator(ctx context.Context, navigatorRequest NavigatorRequest) (ImplResponse, error) {
	if err := s.router.SetNavigator(navigatorRequest.Navigator); err != nil {
		return Response(http.StatusBadRequest, "Unknown Navigator"), nil
	}
	return Response(http.StatusOK, navigatorRequest.Navigator), nil
}

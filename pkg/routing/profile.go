package routing

import (
	"errors"
	"fmt"

	"github.com/natevvv/osm-turn-routing/pkg/graph"
	"github.com/natevvv/osm-turn-routing/pkg/graph/path"
	"github.com/natevvv/osm-turn-routing/pkg/road"
	"github.com/natevvv/osm-turn-routing/pkg/slice"
)

var ErrUnknownVehicle = errors.New("routing: unknown vehicle type")

// 支持的车辆类型
var VehicleTypes = []string{"car", "truck", "bus", "motorcycle", "bicycle"}

const DefaultVehicle = "car"

// 路由配置
type RouteConfig struct {
	VehicleType    string   // 车辆类型：car, truck 等，空字符串表示 car
	PreferHighway  bool     // 是否偏好高速公路
	MaxSpeed       int      // 最大速度限制 (km/h)，0 表示不限制
	AvoidRoadTypes []string // 避开的道路类型，这些道路上的边被隐藏
}

func (c RouteConfig) vehicle() string {
	if c.VehicleType == "" {
		return DefaultVehicle
	}
	return c.VehicleType
}

// 根据配置创建权重函数，权重为通行时间（秒）
func (c RouteConfig) WeightFunc() (path.WeightFunc, error) {
	vehicle := c.vehicle()
	if !slice.Contains(VehicleTypes, vehicle) {
		return nil, fmt.Errorf("%w: %v", ErrUnknownVehicle, c.VehicleType)
	}

	weight := func(from, to graph.NodeId, arc graph.Arc) (float64, bool) {
		return travelTime(arc, vehicle, c.PreferHighway, c.MaxSpeed), true
	}
	if len(c.AvoidRoadTypes) == 0 {
		return weight, nil
	}

	avoid := make(map[road.RoadType]bool, len(c.AvoidRoadTypes))
	for _, roadType := range c.AvoidRoadTypes {
		avoid[road.ParseRoadType(roadType)] = true
	}
	return path.HideArcs(weight, func(from, to graph.NodeId, arc graph.Arc) bool {
		return avoid[road.ParseRoadType(arc.RoadType)]
	}), nil
}

// 通过一条边所需的时间（秒）
func travelTime(arc graph.Arc, vehicleType string, preferHighway bool, maxSpeed int) float64 {
	// 根据道路类型和车辆类型计算基础速度
	speed := baseSpeed(road.ParseRoadType(arc.RoadType), vehicleType)
	if preferHighway && arc.IsMajorRoad() {
		// 如果偏好高速，给高速路更低的权重
		speed = speed * 1.2
	}

	// 应用速度限制
	if maxSpeed > 0 && speed > float64(maxSpeed) {
		speed = float64(maxSpeed)
	}

	// 转换 km/h 到 m/s
	return float64(arc.Distance) / (speed / 3.6)
}

// 根据道路类型和车辆类型获取基础速度 (km/h)
func baseSpeed(roadType road.RoadType, vehicleType string) float64 {
	switch vehicleType {
	case "car":
		switch roadType {
		case road.Motorway:
			return 120.0 // 高速公路
		case road.Trunk:
			return 100.0 // 主干道
		case road.Primary:
			return 80.0 // 一级公路
		case road.Secondary:
			return 60.0 // 二级公路
		case road.Tertiary:
			return 40.0 // 三级公路
		default:
			return 30.0 // 其他道路
		}
	case "truck":
		switch roadType {
		case road.Motorway:
			return 100.0
		case road.Trunk:
			return 80.0
		case road.Primary:
			return 60.0
		default:
			return 40.0
		}
	case "bus":
		switch roadType {
		case road.Motorway:
			return 100.0
		case road.Trunk:
			return 80.0
		default:
			return 50.0
		}
	case "motorcycle":
		switch roadType {
		case road.Motorway:
			return 100.0
		default:
			return 60.0
		}
	case "bicycle":
		return 25.0 // 所有道路类型的自行车速度基本相同
	default:
		return 60.0 // 默认速度
	}
}

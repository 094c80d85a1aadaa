package road

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/natevvv/osm-turn-routing/pkg/geometry"
)

type RoadType int

const (
	Unknown RoadType = iota
	Motorway
	Trunk
	Primary
	Secondary
	Tertiary
	Unclassified
	Residential
	LivingStreet
	Service
)

var roadTypeNames = []string{"unknown", "motorway", "trunk", "primary", "secondary", "tertiary", "unclassified", "residential", "living_street", "service"}

// 各道路类型的默认限速 (km/h)，未标注 maxspeed 时使用
var defaultSpeeds = []int{30, 120, 100, 80, 60, 50, 40, 30, 10, 20}

type Segment struct {
	ID       int64
	Type     RoadType
	Points   []geometry.Point
	Tags     map[string]string
	OneWay   bool
	MaxSpeed int // km/h
}

// 由 OSM 的 highway 标签得到道路类型，连接道 (*_link) 归入主道路类型
func ParseRoadType(highway string) RoadType {
	highway = strings.TrimSuffix(strings.ToLower(highway), "_link")
	for i, name := range roadTypeNames {
		if i > 0 && name == highway {
			return RoadType(i)
		}
	}
	return Unknown
}

func (r RoadType) String() string {
	if r < 0 || int(r) >= len(roadTypeNames) {
		return roadTypeNames[Unknown]
	}
	return roadTypeNames[r]
}

// 默认限速 (km/h)
func (r RoadType) DefaultSpeed() int {
	if r < 0 || int(r) >= len(defaultSpeeds) {
		return defaultSpeeds[Unknown]
	}
	return defaultSpeeds[r]
}

// 道路类型以名称的形式写入 JSON
func (r RoadType) MarshalJSON() ([]byte, error) {
	return json.Marshal(r.String())
}

func (r *RoadType) UnmarshalJSON(data []byte) error {
	var name string
	if err := json.Unmarshal(data, &name); err != nil {
		// 兼容旧格式：数字编码
		var value int
		if err := json.Unmarshal(data, &value); err != nil {
			return fmt.Errorf("road type: %w", err)
		}
		*r = RoadType(value)
		return nil
	}
	*r = ParseRoadType(name)
	return nil
}

// 根据 OSM 标签创建道路段。oneway=-1 时点序列被反转，使其与行驶方向一致
func NewSegment(id int64, tags map[string]string, points []geometry.Point) *Segment {
	roadType := ParseRoadType(tags["highway"])
	segment := &Segment{
		ID:       id,
		Type:     roadType,
		Points:   points,
		Tags:     tags,
		MaxSpeed: ParseMaxSpeed(tags["maxspeed"], roadType.DefaultSpeed()),
	}

	switch tags["oneway"] {
	case "yes", "true", "1":
		segment.OneWay = true
	case "-1", "reverse":
		segment.OneWay = true
		for i, j := 0, len(points)-1; i < j; i, j = i+1, j-1 {
			points[i], points[j] = points[j], points[i]
		}
	default:
		// 高速公路和环岛默认单向
		segment.OneWay = roadType == Motorway || tags["junction"] == "roundabout"
	}
	return segment
}

// 解析 maxspeed 标签，支持 "50"、"30 mph"，无法解析时返回 fallback
func ParseMaxSpeed(value string, fallback int) int {
	value = strings.TrimSpace(value)
	if value == "" {
		return fallback
	}

	factor := 1.0
	if strings.HasSuffix(value, "mph") {
		factor = 1.609344
		value = strings.TrimSpace(strings.TrimSuffix(value, "mph"))
	}
	speed, err := strconv.ParseFloat(value, 64)
	if err != nil || speed <= 0 {
		return fallback
	}
	return int(speed*factor + 0.5)
}

// 道路段的总长度（米）
func (s *Segment) Length() float64 {
	length := 0.0
	for i := 0; i < len(s.Points)-1; i++ {
		length += s.Points[i].DistanceTo(s.Points[i+1])
	}
	return length
}

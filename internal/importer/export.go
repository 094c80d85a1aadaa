package importer

import (
	"encoding/json"
	"os"

	"github.com/natevvv/osm-turn-routing/pkg/road"
)

// 把道路段写成 JSON 文件
func ExportRoadJson(roads []*road.Segment, filename string) error {
	file, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer file.Close()

	return json.NewEncoder(file).Encode(roads)
}

// 读取 ExportRoadJson 写出的文件
func LoadRoadJson(filename string) ([]*road.Segment, error) {
	bytes, err := os.ReadFile(filename)
	if err != nil {
		return nil, err
	}

	var roads []*road.Segment
	if err := json.Unmarshal(bytes, &roads); err != nil {
		return nil, err
	}
	return roads, nil
}

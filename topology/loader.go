package topology

import (
	"fmt"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"

	"github.com/katalvlaran/gridsim/energize"
	"github.com/katalvlaran/gridsim/grid"
)

// coordKey identifies a bus position rounded to 4 decimal places, so line
// endpoints sharing a tower collapse into the same bus.
type coordKey struct {
	lon, lat int64
}

func keyOf(p orb.Point) coordKey {
	return coordKey{
		lon: int64(math.Round(p[0] * 1e4)),
		lat: int64(math.Round(p[1] * 1e4)),
	}
}

// Load reads an Overpass GeoJSON export from path and builds the network.
func Load(path string, opts ...Option) (*Result, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("topology: reading %s: %w", path, err)
	}
	fc, err := geojson.UnmarshalFeatureCollection(data)
	if err != nil {
		return nil, fmt.Errorf("topology: parsing %s: %w", path, err)
	}

	return Build(Classify(fc), opts...)
}

// Classify groups the collection's features by their "power" property.
func Classify(fc *geojson.FeatureCollection) Classified {
	var c Classified
	for _, f := range fc.Features {
		switch f.Properties.MustString("power", "") {
		case "line":
			c.Lines = append(c.Lines, f)
		case "minor_line":
			c.MinorLines = append(c.MinorLines, f)
		case "cable":
			c.Cables = append(c.Cables, f)
		case "substation":
			c.Substations = append(c.Substations, f)
		case "tower":
			c.Towers = append(c.Towers, f)
		case "pole":
			c.Poles = append(c.Poles, f)
		case "transformer":
			c.Transformers = append(c.Transformers, f)
		default:
			c.Others = append(c.Others, f)
		}
	}

	return c
}

// Build assembles the network from classified features: buses from rounded
// coordinates, one line per consecutive coordinate pair, largest connected
// component only, source at the best substation bus.
func Build(c Classified, opts ...Option) (*Result, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	feats := append([]*geojson.Feature{}, capped(c.Lines, o.MaxLines)...)
	feats = append(feats, capped(c.MinorLines, o.MaxMinorLines)...)
	feats = append(feats, capped(c.Cables, o.MaxCables)...)
	if len(feats) == 0 {
		return nil, ErrNoLineFeatures
	}

	var (
		buses    []grid.Bus
		lines    []grid.Line
		coordBus = make(map[coordKey]int64)
		busNext  int64
		lineNext int64
	)

	busAt := func(p orb.Point, kv float64) int64 {
		k := keyOf(p)
		if id, ok := coordBus[k]; ok {
			return id
		}
		id := busNext
		busNext++
		coordBus[k] = id
		buses = append(buses, grid.Bus{ID: id, Lon: p[0], Lat: p[1], VoltageKV: kv})

		return id
	}

	for fi, f := range feats {
		ls, ok := f.Geometry.(orb.LineString)
		if !ok || len(ls) < 2 {
			continue
		}
		kv := ParseVoltageKV(f.Properties.MustString("voltage", ""))
		featID := featureID(f, fi)

		prev := busAt(ls[0], kv)
		for i := 1; i < len(ls); i++ {
			cur := busAt(ls[i], kv)
			if cur == prev {
				continue
			}
			length := Haversine(ls[i-1][1], ls[i-1][0], ls[i][1], ls[i][0])
			if length < 0.001 {
				length = 0.01
			}
			lines = append(lines, grid.Line{
				ID:        lineNext,
				From:      prev,
				To:        cur,
				Name:      fmt.Sprintf("L_%s_%d_%gkV", featID, i-1, kv),
				VoltageKV: kv,
				LengthKM:  length,
			})
			lineNext++
			prev = cur
		}
	}
	if len(buses) == 0 {
		return nil, ErrNoBuses
	}

	net := grid.NewNetwork(buses, lines)
	net, components, removed := largestComponent(net)

	return &Result{
		Net:          net,
		Source:       pickSource(net, c.Substations, coordBus),
		Components:   components,
		RemovedBuses: removed,
	}, nil
}

// largestComponent rebuilds the network keeping only its largest connected
// component, returning the component count and how many buses were dropped.
func largestComponent(net *grid.Network) (*grid.Network, int, int) {
	seen := make(map[int64]struct{}, net.NumBuses())
	var largest map[int64]struct{}
	components := 0

	for _, id := range net.BusIDs() {
		if _, ok := seen[id]; ok {
			continue
		}
		// Disabled set is empty: component structure of the full topology.
		comp, _ := energize.Reachable(net, id, nil)
		for b := range comp {
			seen[b] = struct{}{}
		}
		components++
		if len(comp) > len(largest) {
			largest = comp
		}
	}
	if components <= 1 {
		return net, components, 0
	}

	var buses []grid.Bus
	for _, b := range net.Buses() {
		if _, ok := largest[b.ID]; ok {
			buses = append(buses, b)
		}
	}
	var lines []grid.Line
	for _, l := range net.Lines() {
		_, okF := largest[l.From]
		_, okT := largest[l.To]
		if okF && okT {
			lines = append(lines, l)
		}
	}
	removed := net.NumBuses() - len(buses)

	return grid.NewNetwork(buses, lines), components, removed
}

// pickSource chooses the substation bus with the highest parsed voltage;
// when no substation maps onto a kept bus, the first bus wins.
func pickSource(net *grid.Network, substations []*geojson.Feature, coordBus map[coordKey]int64) int64 {
	best := int64(-1)
	bestKV := 0.0
	for _, f := range substations {
		var p orb.Point
		switch g := f.Geometry.(type) {
		case orb.Point:
			p = g
		case orb.Polygon:
			if len(g) == 0 || len(g[0]) == 0 {
				continue
			}
			p = g[0][0]
		default:
			continue
		}
		id, ok := coordBus[keyOf(p)]
		if !ok || !net.HasBus(id) {
			continue
		}
		if kv := ParseVoltageKV(f.Properties.MustString("voltage", "")); kv > bestKV {
			best, bestKV = id, kv
		}
	}
	if best >= 0 {
		return best
	}

	return net.BusIDs()[0]
}

// ParseVoltageKV parses an OSM voltage tag (volts, possibly
// semicolon-separated) into kilovolts, taking the maximum value. Anything
// unparseable defaults to 11 kV.
func ParseVoltageKV(s string) float64 {
	maxV := 0.0
	for _, part := range strings.Split(s, ";") {
		v, err := strconv.ParseFloat(strings.TrimSpace(part), 64)
		if err != nil {
			continue
		}
		if v > maxV {
			maxV = v
		}
	}
	if maxV <= 0 {
		return 11.0
	}
	if maxV > 1000 {
		return maxV / 1000.0
	}

	return maxV
}

// Haversine returns the great-circle distance in km between two points.
func Haversine(lat1, lon1, lat2, lon2 float64) float64 {
	const earthRadiusKM = 6371.0
	dLat := (lat2 - lat1) * math.Pi / 180
	dLon := (lon2 - lon1) * math.Pi / 180
	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1*math.Pi/180)*math.Cos(lat2*math.Pi/180)*
			math.Sin(dLon/2)*math.Sin(dLon/2)

	return earthRadiusKM * 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))
}

// featureID renders a stable identifier for naming lines.
func featureID(f *geojson.Feature, idx int) string {
	if f.ID != nil {
		return fmt.Sprint(f.ID)
	}

	return fmt.Sprintf("feat_%d", idx)
}

// capped truncates feats to at most n entries.
func capped(feats []*geojson.Feature, n int) []*geojson.Feature {
	if len(feats) > n {
		return feats[:n]
	}

	return feats
}

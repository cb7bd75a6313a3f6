// Package config holds the tunable parameters of the validation engine:
// splice limits per closure type, the point co-location tolerance, and
// the set of cluster layers scanned for overlaps.
package config

// Config is the engine configuration. Zero values mean "use default";
// Load merges a user-supplied file over Default().
type Config struct {
	// PointTolerance is the minimum allowed distance between the feeder
	// point and the primary distribution point, in CRS units.
	PointTolerance float64 `json:"point_tolerance" yaml:"point_tolerance"`

	// SpliceLimits maps a closure type (the IDENTIFIER attribute) to its
	// maximum splice count. Types without an entry are never flagged.
	SpliceLimits map[string]int `json:"splice_limits" yaml:"splice_limits"`

	// ClusterLayers are the layer file names scanned by the cluster
	// overlap check.
	ClusterLayers []string `json:"cluster_layers" yaml:"cluster_layers"`
}

// Default returns the engine defaults matching the Comsof export
// conventions.
func Default() *Config {
	return &Config{
		PointTolerance: 0.01,
		SpliceLimits: map[string]int{
			"BE16":            840,
			"flat_dis":        288,
			"OFDC":            96,
			"Budi-S 9-48 HP":  48,
			"POC_UG_1-8HP":    8,
			"Budi-S 49-72 HP": 72,
		},
		ClusterLayers: []string{
			"OUT_DropClusters.shp",
			"OUT_DistributionClusters.shp",
			"OUT_DistributionCableClusters.shp",
			"OUT_PrimDistributionClusters.shp",
			"OUT_PrimDistributionCableClusters.shp",
			"OUT_FeederClusters.shp",
			"OUT_FeederCableClusters.shp",
		},
	}
}

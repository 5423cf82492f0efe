package biome

// Material identifies a voxel material chosen by terrain materialization.
type Material uint8

const (
	Air Material = iota
	Stone
	Dirt
	Grass
	Sand
	Gravel
	Snow
	Water
)

var materialNames = [...]string{
	Air:    "air",
	Stone:  "stone",
	Dirt:   "dirt",
	Grass:  "grass",
	Sand:   "sand",
	Gravel: "gravel",
	Snow:   "snow",
	Water:  "water",
}

func (m Material) String() string {
	if int(m) < len(materialNames) {
		return materialNames[m]
	}
	return "unknown"
}

package system

import "fmt"

// cargo cycles by shot number
var cargo = []string{
	"Grain", "Ore", "Ice", "Medicine", "Mail", "Seeds", "Fuel", "Tools",
}

// PayloadLabel names the crate for a shot number, starting at 1
func PayloadLabel(shot int) string {
	if shot < 1 {
		shot = 1
	}
	return fmt.Sprintf("%s #%d", cargo[(shot-1)%len(cargo)], shot)
}

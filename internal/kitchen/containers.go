package kitchen

import "fmt"

// Container is a vessel with a known empty weight, used to get the net
// weight of food from a gross scale reading.
type Container struct {
	Name   string
	Weight float64 // grams, empty
}

// Containers returns the known vessels and their tare weights.
func Containers() []Container {
	return []Container{
		{Name: "mug", Weight: 170},
		{Name: "water bottle", Weight: 77},
		{Name: "plastic cup", Weight: 46},
		{Name: "large bottle", Weight: 188},
		{Name: "multicooker pot", Weight: 555},
		{Name: "rice cooker pot", Weight: 664},
	}
}

// NetWeight subtracts a container's tare weight from a gross reading.
func NetWeight(grossGrams float64, containerName string) (float64, error) {
	for _, c := range Containers() {
		if c.Name == containerName {
			net := grossGrams - c.Weight
			if net < 0 {
				return 0, fmt.Errorf("gross weight %.0fg is lighter than the empty %s (%.0fg)",
					grossGrams, c.Name, c.Weight)
			}
			return net, nil
		}
	}
	return 0, fmt.Errorf("unknown container: %s", containerName)
}

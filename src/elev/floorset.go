package elev

// FloorSet is the presence set of floors the car has to discharge at.
// Floors are 1-based; index 0 is unused.
type FloorSet struct {
	Present []bool
}

func newFloorSet(numFloors int) FloorSet {
	return FloorSet{Present: make([]bool, numFloors+1)}
}

func (fs *FloorSet) Add(floor int) {
	fs.Present[floor] = true
}

func (fs *FloorSet) Remove(floor int) {
	fs.Present[floor] = false
}

func (fs *FloorSet) Has(floor int) bool {
	return floor > 0 && floor < len(fs.Present) && fs.Present[floor]
}

func (fs *FloorSet) Len() (count int) {
	for _, present := range fs.Present {
		if present {
			count++
		}
	}
	return count
}

func (fs *FloorSet) Empty() bool {
	return fs.Highest() == 0
}

// Highest returns the highest floor in the set, or 0 if the set is empty.
func (fs *FloorSet) Highest() int {
	for floor := len(fs.Present) - 1; floor > 0; floor-- {
		if fs.Present[floor] {
			return floor
		}
	}
	return 0
}

// Lowest returns the lowest floor in the set, or 0 if the set is empty.
func (fs *FloorSet) Lowest() int {
	for floor := 1; floor < len(fs.Present); floor++ {
		if fs.Present[floor] {
			return floor
		}
	}
	return 0
}

func (fs *FloorSet) AnyAbove(floor int) bool {
	return fs.Highest() > floor
}

func (fs *FloorSet) AnyBelow(floor int) bool {
	lowest := fs.Lowest()
	return lowest != 0 && lowest < floor
}

// Floors lists the members in ascending order.
func (fs *FloorSet) Floors() []int {
	floors := make([]int, 0, len(fs.Present))
	for floor := 1; floor < len(fs.Present); floor++ {
		if fs.Present[floor] {
			floors = append(floors, floor)
		}
	}
	return floors
}

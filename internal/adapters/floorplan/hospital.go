package floorplan

// HospitalName is the name the built-in floor plan is registered under.
const HospitalName = "hospital"

// hospitalZones is the built-in hospital floor: 38 rows by 40 columns.
// -1 is outside the building, 13 is wall, 0 is hallway, 1-12 are wards.
var hospitalZones = [][]int{
	{-1, -1, -1, 13, 13, 13, 13, 13, 13, 13, 13, 13, 13, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1},
	{-1, -1, -1, 13, 1, 1, 1, 13, 1, 1, 1, 1, 13, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1},
	{-1, -1, -1, 13, 1, 1, 1, 13, 1, 1, 1, 1, 13, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1},
	{-1, -1, -1, 13, 1, 1, 1, 13, 1, 1, 1, 1, 13, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1},
	{-1, -1, -1, 13, 13, 13, 1, 13, 1, 13, 13, 13, 13, 13, 13, 13, 13, 13, 13, 13, 13, 13, 13, 13, 13, 13, 13, 13, 13, 13, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1},
	{-1, -1, -1, 13, 1, 1, 1, 1, 1, 1, 1, 1, 2, 2, 13, 2, 2, 13, 2, 2, 13, 2, 13, 2, 13, 2, 2, 2, 2, 13, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1},
	{-1, -1, -1, 13, 1, 1, 1, 1, 1, 1, 1, 1, 2, 2, 13, 2, 2, 13, 2, 2, 13, 2, 13, 2, 13, 2, 2, 2, 2, 13, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1},
	{-1, -1, -1, 13, 1, 1, 1, 1, 1, 1, 1, 1, 13, 2, 13, 2, 2, 13, 2, 2, 13, 2, 13, 2, 13, 2, 2, 2, 2, 13, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1},
	{13, 13, 13, 13, 13, 1, 1, 13, 13, 2, 2, 13, 13, 2, 13, 2, 13, 13, 2, 13, 13, 2, 13, 2, 13, 13, 2, 2, 13, 13, 13, 13, 13, 13, 13, 13, 13, 13, 13, 13},
	{13, 0, 0, 0, 0, 0, 0, 0, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2, 0, 0, 0, 13, 3, 3, 3, 3, 13, 4, 4, 13},
	{13, 0, 0, 0, 0, 0, 0, 0, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2, 0, 0, 0, 13, 13, 13, 3, 3, 13, 4, 4, 13},
	{13, 0, 0, 0, 0, 13, 5, 13, 2, 13, 2, 13, 2, 2, 2, 2, 2, 13, 13, 2, 13, 2, 2, 13, 2, 2, 2, 13, 13, 0, 0, 13, 3, 3, 3, 3, 13, 4, 4, 13},
	{13, 0, 0, 0, 0, 13, 13, 13, 2, 13, 13, 13, 2, 2, 2, 2, 2, 2, 13, 2, 13, 2, 2, 13, 2, 2, 2, 13, 13, 0, 0, 13, 13, 13, 3, 3, 13, 4, 13, 13},
	{13, 0, 0, 0, 0, 13, 5, 13, 2, 13, 2, 13, 2, 2, 2, 2, 2, 13, 13, 2, 13, 13, 13, 13, 2, 2, 13, 5, 5, 0, 0, 13, 3, 3, 3, 3, 13, 4, 4, 13},
	{13, 0, 0, 0, 0, 0, 0, 0, 0, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2, 13, 13, 13, 0, 0, 13, 3, 3, 3, 3, 13, 4, 4, 13},
	{13, 0, 0, 0, 0, 0, 0, 0, 0, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2, 3, 3, 13, 0, 0, 3, 3, 3, 3, 3, 13, 4, 4, 13},
	{13, 0, 0, 0, 0, 13, 13, 6, 13, 13, 13, 2, 13, 2, 13, 2, 13, 7, 13, 2, 13, 2, 13, 2, 2, 13, 3, 3, 13, 0, 0, 13, 13, 13, 13, 13, 13, 13, 13, 13},
	{13, 0, 0, 0, 0, 13, 6, 6, 6, 6, 13, 2, 13, 2, 13, 2, 13, 7, 13, 2, 13, 2, 13, 2, 2, 13, 13, 13, 5, 0, 0, 13, 8, 13, 4, 4, 4, 4, 4, 4},
	{13, 0, 0, 0, 0, 13, 6, 6, 6, 6, 13, 13, 13, 13, 13, 13, 13, 7, 13, 13, 13, 13, 13, 2, 2, 3, 3, 13, 13, 0, 0, 8, 8, 8, 13, 13, 13, 13, 13, 13},
	{13, 0, 0, 0, 0, 13, 6, 6, 6, 6, 13, 7, 7, 7, 7, 7, 7, 7, 7, 13, 2, 2, 2, 2, 2, 13, 13, 6, 6, 0, 0, 13, 13, 8, 8, 8, 8, 8, 8, 13},
	{13, 0, 0, 0, 0, 13, 13, 13, 13, 6, 13, 7, 13, 13, 13, 13, 13, 7, 13, 13, 13, 13, 13, 0, 0, 13, 5, 13, 13, 0, 0, 13, 8, 8, 8, 13, 13, 8, 8, 13},
	{13, 13, 13, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 8, 8, 8, 8, 8, 8, 13, 13, 13},
	{-1, -1, 13, 0, 0, 13, 13, 13, 13, 6, 13, 13, 4, 13, 4, 13, 13, 13, 10, 13, 13, 13, 13, 0, 0, 13, 13, 9, 13, 0, 0, 13, 13, 13, 13, 13, 13, -1, -1, -1},
	{-1, -1, 13, 0, 0, 13, 6, 6, 13, 6, 6, 13, 4, 13, 4, 4, 13, 10, 10, 10, 10, 10, 13, 0, 0, 13, 9, 9, 13, 6, 6, 13, 6, 6, 13, 6, 13, -1, -1, -1},
	{-1, -1, 13, 0, 0, 13, 6, 6, 13, 6, 6, 13, 4, 13, 4, 4, 13, 13, 10, 10, 13, 10, 13, 0, 0, 13, 9, 9, 13, 6, 6, 13, 6, 6, 13, 6, 13, -1, -1, -1},
	{-1, -1, 13, 0, 0, 13, 6, 6, 6, 6, 6, 6, 13, 11, 13, 13, 10, 10, 10, 10, 13, 13, 13, 0, 0, 13, 9, 9, 13, 6, 6, 13, 6, 13, 13, 6, 13, -1, -1, -1},
	{-1, -1, 13, 0, 0, 5, 13, 13, 13, 6, 6, 6, 13, 11, 11, 13, 10, 10, 10, 13, 11, 11, 11, 0, 0, 13, 9, 9, 13, 6, 6, 6, 6, 6, 6, 6, 13, -1, -1, -1},
	{-1, -1, 13, 0, 0, 13, 6, 6, 6, 6, 13, 13, 11, 11, 11, 11, 13, 13, 13, 13, 11, 11, 13, 0, 0, 13, 9, 9, 13, 6, 6, 6, 6, 6, 6, 6, 13, -1, -1, -1},
	{-1, -1, 13, 0, 0, 6, 6, 6, 6, 6, 13, 11, 11, 11, 11, 11, 11, 11, 11, 11, 11, 11, 13, 0, 0, 13, 9, 9, 13, 6, 6, 6, 6, 6, 6, 6, 13, -1, -1, -1},
	{-1, -1, 13, 0, 0, 13, 13, 13, 13, 13, 13, 13, 11, 13, 13, 13, 13, 13, 11, 13, 13, 11, 13, 0, 0, 13, 9, 9, 9, 13, 13, 13, 13, 13, 13, 13, 13, -1, -1, -1},
	{-1, -1, 13, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 9, 9, 9, 9, 9, 9, 9, 9, 9, 9, 9, 13, -1, -1, -1},
	{-1, -1, 13, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 9, 9, 9, 9, 9, 9, 9, 9, 9, 9, 9, 13, -1, -1, -1},
	{-1, -1, 13, 0, 0, 13, 13, 11, 13, 11, 13, 11, 13, 13, 11, 13, 11, 13, 11, 13, 13, 11, 13, 13, 11, 13, 13, 9, 13, 12, 13, 13, 12, 13, 9, 13, 13, -1, -1, -1},
	{-1, -1, 13, 0, 0, 13, 11, 11, 11, 11, 13, 11, 11, 13, 11, 13, 11, 13, 11, 13, 11, 11, 13, 11, 11, 13, 9, 9, 13, 12, 12, 13, 12, 13, 9, 9, 13, -1, -1, -1},
	{-1, -1, 13, 0, 0, 13, 13, 11, 13, 13, 13, 11, 11, 13, 11, 13, 11, 11, 11, 13, 11, 11, 13, 13, 11, 13, 9, 9, 13, 12, 13, 13, 13, 13, 9, 9, 13, -1, -1, -1},
	{-1, -1, 13, 0, 0, 5, 13, 11, 11, 11, 13, 11, 11, 13, 11, 13, 11, 13, 11, 13, 11, 11, 13, 11, 11, 13, 9, 9, 13, 12, 12, 12, 12, 13, 9, 9, 13, -1, -1, -1},
	{-1, -1, 13, 5, 13, 5, 13, 11, 11, 11, 13, 11, 11, 13, 11, 13, 11, 13, 11, 13, 11, 11, 13, 11, 11, 13, 9, 9, 13, 12, 12, 12, 12, 13, 9, 9, 13, -1, -1, -1},
	{-1, -1, 13, 13, 13, 13, 13, 13, 13, 13, 13, 13, 13, 13, 13, 13, 13, 13, 13, 13, 13, 13, 13, 13, 13, 13, 13, 13, 13, 13, 13, 13, 13, 13, 13, 13, 13, -1, -1, -1},
}

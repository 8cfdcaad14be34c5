package dto

type FloorPlanResponse struct {
	Name  string  `json:"name"`
	Rows  int     `json:"rows"`
	Cols  int     `json:"cols"`
	Zones [][]int `json:"zones"`
}

package domain

import "strconv"

// Semantic ward tag of a floor plan cell.
type ZoneCode int

// Zone codes used by the hospital floor plan.
// ZoneOutside and ZoneWall are the two impassable codes.
const (
	ZoneOutside    ZoneCode = -1
	ZoneHallway    ZoneCode = 0
	ZoneMaternity  ZoneCode = 1
	ZoneGeneral    ZoneCode = 2
	ZoneEmergency  ZoneCode = 3
	ZoneAdmissions ZoneCode = 4
	ZoneIsolation  ZoneCode = 5
	ZoneOncology   ZoneCode = 6
	ZoneBurn       ZoneCode = 7
	ZoneICU        ZoneCode = 8
	ZoneSurgical   ZoneCode = 9
	ZoneHematology ZoneCode = 10
	ZonePediatric  ZoneCode = 11
	ZoneMedical    ZoneCode = 12
	ZoneWall       ZoneCode = 13
)

var zoneNames = map[ZoneCode]string{
	ZoneOutside:    "Out of Hospital",
	ZoneHallway:    "Hallway",
	ZoneMaternity:  "Maternity Ward",
	ZoneGeneral:    "General Ward",
	ZoneEmergency:  "Emergency",
	ZoneAdmissions: "Admissions",
	ZoneIsolation:  "Isolation Ward",
	ZoneOncology:   "Oncology",
	ZoneBurn:       "Burn Ward",
	ZoneICU:        "ICU",
	ZoneSurgical:   "Surgical Ward",
	ZoneHematology: "Hematology",
	ZonePediatric:  "Pediatric Ward",
	ZoneMedical:    "Medical Ward",
	ZoneWall:       "Wall",
}

// Name returns the ward name, or "Zone <n>" for codes the hospital does not define.
func (z ZoneCode) Name() string {
	if n, ok := zoneNames[z]; ok {
		return n
	}
	return "Zone " + strconv.Itoa(int(z))
}

// Passable reports whether an agent may stand on a cell with this code.
func (z ZoneCode) Passable() bool {
	return z != ZoneWall && z != ZoneOutside
}

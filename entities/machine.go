package entities

import "time"

type MachineType string

const (
	MachineTractor   MachineType = "tractor"
	MachineHarvester MachineType = "harvester"
	MachineSprayer   MachineType = "sprayer"
	MachinePlane     MachineType = "plane"
	MachineImplement MachineType = "implement"
	MachineOther     MachineType = "other"
)

func (t MachineType) Valid() bool {
	switch t {
	case MachineTractor, MachineHarvester, MachineSprayer, MachinePlane, MachineImplement, MachineOther:
		return true
	}
	return false
}

type MachineStatus string

const (
	MachineOperational MachineStatus = "operational"
	MachineInService   MachineStatus = "maintenance"
	MachineBroken      MachineStatus = "broken"
)

func (s MachineStatus) Valid() bool {
	return s == MachineOperational || s == MachineInService || s == MachineBroken
}

type Machine struct {
	ID                  string        `gorm:"primaryKey" json:"id"`
	Name                string        `json:"name"`
	Model               string        `json:"model"`
	Type                MachineType   `json:"type" gorm:"index"`
	Code                string        `json:"code" gorm:"index"` // fleet code, e.g. TR-JD-01
	HoursUsed           float64       `json:"hours_used"`        // engine hours
	Status              MachineStatus `json:"status"`
	NextMaintenance     *time.Time    `json:"next_maintenance,omitempty"`
	CostPerHour         float64       `json:"cost_per_hour"`
	PurchaseDate        time.Time     `json:"purchase_date"`
	LastMaintenanceDate *time.Time    `json:"last_maintenance_date,omitempty"`
	Implements          []string      `json:"implements" gorm:"serializer:json"` // codes of attached implements
	Notes               string        `json:"notes,omitempty"`

	CreatedAt time.Time `json:"created_at"`
}

type MaintenanceType string

const (
	MaintenancePreventive MaintenanceType = "preventive"
	MaintenanceCorrective MaintenanceType = "corrective"
	MaintenanceRegular    MaintenanceType = "regular"
)

func (t MaintenanceType) Valid() bool {
	return t == MaintenancePreventive || t == MaintenanceCorrective || t == MaintenanceRegular
}

type MaintenancePart struct {
	Name     string  `json:"name"`
	Quantity float64 `json:"quantity"`
	UnitCost float64 `json:"unit_cost"`
}

type MaintenanceRecord struct {
	ID          string            `gorm:"primaryKey" json:"id"`
	MachineID   string            `json:"machine_id" gorm:"index"`
	Date        time.Time         `json:"date" gorm:"index"`
	Type        MaintenanceType   `json:"type"`
	Description string            `json:"description"`
	Cost        float64           `json:"cost"`
	Technician  string            `json:"technician,omitempty"`
	Parts       []MaintenancePart `json:"parts" gorm:"serializer:json"`
	Completed   bool              `json:"completed"`

	CreatedAt time.Time `json:"created_at"`
}

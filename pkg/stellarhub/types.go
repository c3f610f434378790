package stellarhub

import (
	"time"

	"github.com/stellarhub/stellarctl/internal/identity"
)

// AuthResponse is returned by sign-in.
type AuthResponse struct {
	Token string        `json:"token"`
	User  identity.User `json:"user"`
}

// SignInRequest carries sign-in credentials.
type SignInRequest struct {
	Email    string `json:"Email"`
	Password string `json:"Password"`
}

// SignUpRequest carries new-user registration details. The backend expects a
// business email address and a bare 10-digit phone number.
type SignUpRequest struct {
	Name        string `json:"name"`
	Email       string `json:"email"`
	PhoneNumber string `json:"phoneNumber"`
}

// InviteUserRequest invites a user into the current account.
type InviteUserRequest struct {
	Name  string `json:"Name"`
	Email string `json:"Email"`
	Role  string `json:"Role"`
}

// UserListResponse wraps the account's user roster.
type UserListResponse struct {
	Users []identity.User `json:"users"`
}

// Machine is a monitored machine.
type Machine struct {
	ID       string `json:"_id"`
	Name     string `json:"Name"`
	Status   string `json:"Status"`
	Location string `json:"Location"`
}

// MachineListResponse wraps the account's machines.
type MachineListResponse struct {
	Machines []Machine `json:"machines"`
}

// Sensor is one telemetry channel of a machine.
type Sensor struct {
	ID   string `json:"_id"`
	Name string `json:"Name"`
	Unit string `json:"Unit"`
}

// SensorListResponse wraps a machine's sensors.
type SensorListResponse struct {
	Sensors []Sensor `json:"sensors"`
}

// TimeRange bounds a telemetry query.
type TimeRange struct {
	From time.Time `json:"from"`
	To   time.Time `json:"to"`
}

// DataPoint is one telemetry sample.
type DataPoint struct {
	Timestamp time.Time `json:"timestamp"`
	Value     float64   `json:"value"`
}

// QueryResponse wraps telemetry query results.
type QueryResponse struct {
	Points []DataPoint `json:"points"`
}

// Device is a connected IoT device.
type Device struct {
	ID              string `json:"_id"`
	Name            string `json:"Name"`
	Type            string `json:"Type"`
	FirmwareVersion string `json:"FirmwareVersion"`
	Status          string `json:"Status"`
}

// DeviceListResponse wraps the account's devices.
type DeviceListResponse struct {
	Devices []Device `json:"devices"`
}

// WorkOrder is a maintenance task against a machine or device.
type WorkOrder struct {
	ID          string    `json:"_id"`
	Title       string    `json:"Title"`
	Description string    `json:"Description"`
	Status      string    `json:"Status"`
	Priority    string    `json:"Priority"`
	AssignedTo  string    `json:"AssignedTo"`
	CreatedAt   time.Time `json:"CreatedAt"`
}

// WorkOrderListResponse wraps the account's work orders.
type WorkOrderListResponse struct {
	WorkOrders []WorkOrder `json:"workOrders"`
}

// CreateWorkOrderRequest opens a new work order.
type CreateWorkOrderRequest struct {
	Title       string `json:"Title"`
	Description string `json:"Description"`
	Priority    string `json:"Priority"`
	AssignedTo  string `json:"AssignedTo,omitempty"`
}

// StockItem is one inventory line.
type StockItem struct {
	ID       string `json:"_id"`
	Name     string `json:"Name"`
	Quantity int    `json:"Quantity"`
	Location string `json:"Location"`
}

// StockListResponse wraps the account's inventory.
type StockListResponse struct {
	Items []StockItem `json:"items"`
}

// FirmwareStatus is the OTA rollout state of one device.
type FirmwareStatus struct {
	DeviceID       string `json:"DeviceId"`
	CurrentVersion string `json:"CurrentVersion"`
	TargetVersion  string `json:"TargetVersion"`
	State          string `json:"State"`
	Progress       int    `json:"Progress"`
}

// FirmwareStatusResponse wraps the account's OTA rollout.
type FirmwareStatusResponse struct {
	Devices []FirmwareStatus `json:"devices"`
}

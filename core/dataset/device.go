package dataset

// Device statuses as they appear in the inventory export.
const (
	DeviceInUse          = "In-use"
	DeviceAvailable      = "Available"
	DeviceDecommissioned = "Decommissioned"
	DeviceUnknown        = "Unknown"
)

// MDM enrollment values.
const (
	MDMYes           = "Yes"
	MDMNo            = "No"
	MDMNotApplicable = "Not Applicable"
)

// Device is one row of the device inventory. AssignedUserEmail is lower-cased
// on load and is a soft reference: it may point at no known employee, or at a
// deleted one.
type Device struct {
	AssetNumber       string `json:"assetNumber"`
	DeviceStatus      string `json:"deviceStatus"`
	DeviceType        string `json:"deviceType"`
	Manufacturer      string `json:"manufacturer"`
	ModelNumber       string `json:"modelNumber"`
	ModelName         string `json:"modelName"`
	OperatingSystem   string `json:"operatingSystem"`
	SerialNumber      string `json:"serialNumber"`
	Procurement       string `json:"deviceProcurement"`
	StartDate         string `json:"startDate"`
	EndDate           string `json:"endDate"`
	AdditionalInfo    string `json:"additionalInformation"`
	AssignedUserID    string `json:"assignedUserId"`
	AssignedUserEmail string `json:"assignedUserEmail"`
	AssignedDate      string `json:"assignedDate"`
	UnassignedDate    string `json:"unassignedDate"`
	MDM               string `json:"mdm"`
	Vendor            string `json:"vendor"`
	AppleCare         string `json:"appleCare"`
	AssetStatus       string `json:"assetStatus"`
	City              string `json:"city"`
	Color             string `json:"color"`
	Region            string `json:"region"`
}

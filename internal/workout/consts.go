package workout

// Distance and time conversion
const (
	LenStep         = 0.65 // meters covered per step
	SwimmingLenStep = 1.38 // meters covered per stroke
	MInKm           = 1000
	MinInH          = 60
)

// Calorie formula coefficients
const (
	runningCalorieSpeedMult  = 18
	runningCalorieSpeedShift = 20

	walkingCalorieWeightMult = 0.035
	walkingCalorieSpeedMult  = 0.029

	swimmingCalorieSpeedShift = 1.1
	swimmingCalorieWeightMult = 2
)

// Kind identifies a workout variant
type Kind int

const (
	KindTraining Kind = iota // Bare training without a calorie formula
	KindRunning
	KindSportsWalking
	KindSwimming
)

// KindInfo contains display information for a workout kind
type KindInfo struct {
	Kind  Kind
	Label string
}

// AllKinds defines every workout kind in declaration order
var AllKinds = []KindInfo{
	{Kind: KindTraining, Label: "Training"},
	{Kind: KindRunning, Label: "Running"},
	{Kind: KindSportsWalking, Label: "SportsWalking"},
	{Kind: KindSwimming, Label: "Swimming"},
}

// Label returns the display label used in reports
func (k Kind) Label() string {
	for _, info := range AllKinds {
		if info.Kind == k {
			return info.Label
		}
	}
	return "Unknown"
}

func (k Kind) String() string {
	return k.Label()
}

package game

// Action types accepted by PerformAction.
const (
	ActionNextDay = "next_day"
	ActionPlant   = "plant"
	ActionWater   = "water"
	ActionHarvest = "harvest"
)

// Player-facing message texts. Failed actions all share the generic
// not-recognized message; the API deliberately does not tell the client
// which precondition was missed.
const (
	MsgDayPassed           = "A new day has dawned."
	MsgActionNotRecognized = "Action not recognized."

	MsgWelcomeBackFormat = "Welcome back, %s!"
	MsgFarmCreatedFormat = "New farm created for %s in %s!"
	MsgPlantedFormat     = "You planted %s in Field %d."
	MsgWateredFormat     = "You watered Field %d. It cost %d TZS."
	MsgHarvestedFormat   = "You harvested %d units of %s!"
)

// Quest text for the starter quest shown to every new farm.
const (
	starterQuestID            = "main_quest_1"
	starterQuestTitle         = "Your First Farm"
	starterQuestDescFormat    = "Welcome to your farm in %s! Let's get started by planting some maize. Select Field 1 and choose 'Plant'."
	starterQuestLearnedFormat = "Choosing the right crop for your region is key to success. %s is excellent for this."
)

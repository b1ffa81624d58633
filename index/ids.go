package index

import "strconv"

// ID is a symbolic file identifier. The order of the constants is the order
// of the persisted address table; reordering them invalidates every
// provisioned card.
type ID uint8

// File ids.
const (
	Null ID = iota

	// App Company
	CompanyAudio
	CompanyImage

	// Core System Files
	MenuButtonAudio
	HomescreenImage
	StartupAnimation0
	StartupAnimation1
	StartupAnimation2
	StartupAnimation3
	StartupAnimation4
	StartupAnimation5
	StartupAnimation6
	StartupAnimation7
	StartupAnimation8
	StartupAnimation9
	StartupAnimation10
	StartupAnimation11
	StartupAnimation12

	// App References
	Person1Large
	Person1SmallPressed
	Person1SmallNotPressed
	Person3Large
	Person3SmallPressed
	Person3SmallNotPressed
	Person2Large
	Person2SmallPressed
	Person2SmallNotPressed
	Person4Large
	Person4SmallPressed
	Person4SmallNotPressed

	// App Contact
	AaronLarge
	GithubLogoLight

	// App Skills
	GithubLogo
	LinkedinLogo
	SkillsArm
	SkillsCircuit
	SkillsC
	SkillsEquipment
	SkillsPcb
	SkillsSolder

	// App Portfolio Images
	SlidePortfolioAcqAdc
	SlidePortfolioAcqBode
	SlidePortfolioAcqBreadboard
	SlidePortfolioAcqGui
	SlidePortfolioAcqFilter
	SlidePortfolioAcqMemory
	SlidePortfolioFoboCode
	SlidePortfolioFoboStanding
	SlidePortfolioFoboFritzing
	SlidePortfolioFoboLeg
	SlidePortfolioTamogatchiCode
	SlidePortfolioTamogatchiCase
	SlidePortfolioTamogatchiPcb3D
	SlidePortfolioTamogatchiPcbactual
	SlidePortfolioTamogatchiPerf
	SlidePortfolioOtherCandyMain
	SlidePortfolioOtherCandyMinor
	SlidePortfolioOtherWorkshop
	SlidePortfolioOtherUA741
	SlidePortfolioOtherRecorder

	// App Portfolio Audio
	PortfolioFobo1Audio
	PortfolioFobo2Audio
	PortfolioFobo3Audio
	PortfolioFobo4Audio
	PortfolioGameboard1Audio
	PortfolioGameboard2Audio
	PortfolioGameboard3Audio
	PortfolioGameboard4Audio
	PortfolioGameboard5Audio
	PortfolioData1Audio
	PortfolioData2Audio
	PortfolioData3Audio
	PortfolioData4Audio
	PortfolioData5Audio
	PortfolioData6Audio
	PortfolioCandymainAudio
	PortfolioCandy3DAudio
	PortfolioWorkshopAudio
	PortfolioUa741Audio
	PortfolioVoiceAudio

	// App Languages
	LanguagesMainScreen
	GermanAudio
	SpanishAudio
	GermanImage
	SpanishImage

	// App About Me
	AboutMeMainMenu
	AboutMeMainEducation
	AboutMeMainGoals
	AboutMeMainHobbies
	AboutMeMainInterests
	AboutMeMainExperience
	AboutMeSubEducation
	AboutMeSubGoals
	AboutMeSubHobbies
	AboutMeSubInterests
	AboutMeSubExperience

	// App Device Images
	SlideDeviceIntroDrawing
	SlideDeviceIntroModel
	SlideDeviceMechanicalPrototype
	SlideDeviceMechanicalFinal
	SlideDeviceMechanicalProcessing
	SlideDeviceHardwareSchematic
	SlideDeviceHardwareLayout
	SlideDeviceHardwarePCB
	SlideDeviceHardwareSolder
	SlideDeviceHardwareFirmware
	SlideDeviceHardwareJig
	SlideDeviceProductPhoto
	SlideDeviceProductBox
	SlideDeviceProductFoam
	SlideDeviceProductManual

	// App Device Audio
	DeviceStart1Audio
	DeviceStart2Audio
	DeviceMechanical1Audio
	DeviceMechanical2Audio
	DeviceMechanical3Audio
	DeviceHwfw1Audio
	DeviceHwfw2Audio
	DeviceHwfw3Audio
	DeviceHwfw4Audio
	DeviceHwfw5Audio
	DeviceHwfw6Audio
	DeviceProduct1Audio
	DeviceProduct2Audio
	DeviceProduct3Audio
	DeviceProduct4Audio

	// App Intro
	IntroAudio

	// NumIDs is the number of ids in the enumeration.
	NumIDs
)

var idNames = [NumIDs]string{
	Null:                              "Null",
	CompanyAudio:                      "CompanyAudio",
	CompanyImage:                      "CompanyImage",
	MenuButtonAudio:                   "MenuButtonAudio",
	HomescreenImage:                   "HomescreenImage",
	StartupAnimation0:                 "StartupAnimation0",
	StartupAnimation1:                 "StartupAnimation1",
	StartupAnimation2:                 "StartupAnimation2",
	StartupAnimation3:                 "StartupAnimation3",
	StartupAnimation4:                 "StartupAnimation4",
	StartupAnimation5:                 "StartupAnimation5",
	StartupAnimation6:                 "StartupAnimation6",
	StartupAnimation7:                 "StartupAnimation7",
	StartupAnimation8:                 "StartupAnimation8",
	StartupAnimation9:                 "StartupAnimation9",
	StartupAnimation10:                "StartupAnimation10",
	StartupAnimation11:                "StartupAnimation11",
	StartupAnimation12:                "StartupAnimation12",
	Person1Large:                      "Person1Large",
	Person1SmallPressed:               "Person1SmallPressed",
	Person1SmallNotPressed:            "Person1SmallNotPressed",
	Person3Large:                      "Person3Large",
	Person3SmallPressed:               "Person3SmallPressed",
	Person3SmallNotPressed:            "Person3SmallNotPressed",
	Person2Large:                      "Person2Large",
	Person2SmallPressed:               "Person2SmallPressed",
	Person2SmallNotPressed:            "Person2SmallNotPressed",
	Person4Large:                      "Person4Large",
	Person4SmallPressed:               "Person4SmallPressed",
	Person4SmallNotPressed:            "Person4SmallNotPressed",
	AaronLarge:                        "AaronLarge",
	GithubLogoLight:                   "GithubLogoLight",
	GithubLogo:                        "GithubLogo",
	LinkedinLogo:                      "LinkedinLogo",
	SkillsArm:                         "SkillsArm",
	SkillsCircuit:                     "SkillsCircuit",
	SkillsC:                           "SkillsC",
	SkillsEquipment:                   "SkillsEquipment",
	SkillsPcb:                         "SkillsPcb",
	SkillsSolder:                      "SkillsSolder",
	SlidePortfolioAcqAdc:              "SlidePortfolioAcqAdc",
	SlidePortfolioAcqBode:             "SlidePortfolioAcqBode",
	SlidePortfolioAcqBreadboard:       "SlidePortfolioAcqBreadboard",
	SlidePortfolioAcqGui:              "SlidePortfolioAcqGui",
	SlidePortfolioAcqFilter:           "SlidePortfolioAcqFilter",
	SlidePortfolioAcqMemory:           "SlidePortfolioAcqMemory",
	SlidePortfolioFoboCode:            "SlidePortfolioFoboCode",
	SlidePortfolioFoboStanding:        "SlidePortfolioFoboStanding",
	SlidePortfolioFoboFritzing:        "SlidePortfolioFoboFritzing",
	SlidePortfolioFoboLeg:             "SlidePortfolioFoboLeg",
	SlidePortfolioTamogatchiCode:      "SlidePortfolioTamogatchiCode",
	SlidePortfolioTamogatchiCase:      "SlidePortfolioTamogatchiCase",
	SlidePortfolioTamogatchiPcb3D:     "SlidePortfolioTamogatchiPcb3D",
	SlidePortfolioTamogatchiPcbactual: "SlidePortfolioTamogatchiPcbactual",
	SlidePortfolioTamogatchiPerf:      "SlidePortfolioTamogatchiPerf",
	SlidePortfolioOtherCandyMain:      "SlidePortfolioOtherCandyMain",
	SlidePortfolioOtherCandyMinor:     "SlidePortfolioOtherCandyMinor",
	SlidePortfolioOtherWorkshop:       "SlidePortfolioOtherWorkshop",
	SlidePortfolioOtherUA741:          "SlidePortfolioOtherUA741",
	SlidePortfolioOtherRecorder:       "SlidePortfolioOtherRecorder",
	PortfolioFobo1Audio:               "PortfolioFobo1Audio",
	PortfolioFobo2Audio:               "PortfolioFobo2Audio",
	PortfolioFobo3Audio:               "PortfolioFobo3Audio",
	PortfolioFobo4Audio:               "PortfolioFobo4Audio",
	PortfolioGameboard1Audio:          "PortfolioGameboard1Audio",
	PortfolioGameboard2Audio:          "PortfolioGameboard2Audio",
	PortfolioGameboard3Audio:          "PortfolioGameboard3Audio",
	PortfolioGameboard4Audio:          "PortfolioGameboard4Audio",
	PortfolioGameboard5Audio:          "PortfolioGameboard5Audio",
	PortfolioData1Audio:               "PortfolioData1Audio",
	PortfolioData2Audio:               "PortfolioData2Audio",
	PortfolioData3Audio:               "PortfolioData3Audio",
	PortfolioData4Audio:               "PortfolioData4Audio",
	PortfolioData5Audio:               "PortfolioData5Audio",
	PortfolioData6Audio:               "PortfolioData6Audio",
	PortfolioCandymainAudio:           "PortfolioCandymainAudio",
	PortfolioCandy3DAudio:             "PortfolioCandy3DAudio",
	PortfolioWorkshopAudio:            "PortfolioWorkshopAudio",
	PortfolioUa741Audio:               "PortfolioUa741Audio",
	PortfolioVoiceAudio:               "PortfolioVoiceAudio",
	LanguagesMainScreen:               "LanguagesMainScreen",
	GermanAudio:                       "GermanAudio",
	SpanishAudio:                      "SpanishAudio",
	GermanImage:                       "GermanImage",
	SpanishImage:                      "SpanishImage",
	AboutMeMainMenu:                   "AboutMeMainMenu",
	AboutMeMainEducation:              "AboutMeMainEducation",
	AboutMeMainGoals:                  "AboutMeMainGoals",
	AboutMeMainHobbies:                "AboutMeMainHobbies",
	AboutMeMainInterests:              "AboutMeMainInterests",
	AboutMeMainExperience:             "AboutMeMainExperience",
	AboutMeSubEducation:               "AboutMeSubEducation",
	AboutMeSubGoals:                   "AboutMeSubGoals",
	AboutMeSubHobbies:                 "AboutMeSubHobbies",
	AboutMeSubInterests:               "AboutMeSubInterests",
	AboutMeSubExperience:              "AboutMeSubExperience",
	SlideDeviceIntroDrawing:           "SlideDeviceIntroDrawing",
	SlideDeviceIntroModel:             "SlideDeviceIntroModel",
	SlideDeviceMechanicalPrototype:    "SlideDeviceMechanicalPrototype",
	SlideDeviceMechanicalFinal:        "SlideDeviceMechanicalFinal",
	SlideDeviceMechanicalProcessing:   "SlideDeviceMechanicalProcessing",
	SlideDeviceHardwareSchematic:      "SlideDeviceHardwareSchematic",
	SlideDeviceHardwareLayout:         "SlideDeviceHardwareLayout",
	SlideDeviceHardwarePCB:            "SlideDeviceHardwarePCB",
	SlideDeviceHardwareSolder:         "SlideDeviceHardwareSolder",
	SlideDeviceHardwareFirmware:       "SlideDeviceHardwareFirmware",
	SlideDeviceHardwareJig:            "SlideDeviceHardwareJig",
	SlideDeviceProductPhoto:           "SlideDeviceProductPhoto",
	SlideDeviceProductBox:             "SlideDeviceProductBox",
	SlideDeviceProductFoam:            "SlideDeviceProductFoam",
	SlideDeviceProductManual:          "SlideDeviceProductManual",
	DeviceStart1Audio:                 "DeviceStart1Audio",
	DeviceStart2Audio:                 "DeviceStart2Audio",
	DeviceMechanical1Audio:            "DeviceMechanical1Audio",
	DeviceMechanical2Audio:            "DeviceMechanical2Audio",
	DeviceMechanical3Audio:            "DeviceMechanical3Audio",
	DeviceHwfw1Audio:                  "DeviceHwfw1Audio",
	DeviceHwfw2Audio:                  "DeviceHwfw2Audio",
	DeviceHwfw3Audio:                  "DeviceHwfw3Audio",
	DeviceHwfw4Audio:                  "DeviceHwfw4Audio",
	DeviceHwfw5Audio:                  "DeviceHwfw5Audio",
	DeviceHwfw6Audio:                  "DeviceHwfw6Audio",
	DeviceProduct1Audio:               "DeviceProduct1Audio",
	DeviceProduct2Audio:               "DeviceProduct2Audio",
	DeviceProduct3Audio:               "DeviceProduct3Audio",
	DeviceProduct4Audio:               "DeviceProduct4Audio",
	IntroAudio:                        "IntroAudio",
}

// String returns the constant name of the id.
func (id ID) String() string {
	if id < NumIDs {
		return idNames[id]
	}
	return "ID(" + strconv.Itoa(int(id)) + ")"
}

// ParseID returns the id with the given constant name.
func ParseID(name string) (ID, bool) {
	for i, n := range idNames {
		if n == name {
			return ID(i), true
		}
	}
	return 0, false
}

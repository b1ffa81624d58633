package index

// DefaultCatalog is the device's file enumeration with the 5-byte marker
// embedded in each asset.
var DefaultCatalog = Catalog{
	{Null, KindImage, Identifier{0x00, 0x00, 0x00, 0x00, 0x00}},
	{CompanyAudio, KindAudio, Identifier{0x25, 0x78, 0x99, 0x1B, 0x65}},
	{CompanyImage, KindImage, Identifier{0x25, 0x78, 0x99, 0x1B, 0x66}},
	{MenuButtonAudio, KindAudio, Identifier{0x42, 0x7A, 0x97, 0x8D, 0x99}},
	{HomescreenImage, KindImage, Identifier{0x11, 0x03, 0x35, 0xBD, 0xF8}},
	{StartupAnimation0, KindImage, Identifier{0x58, 0x48, 0xD0, 0x5F, 0x00}},
	{StartupAnimation1, KindImage, Identifier{0x58, 0x48, 0xD0, 0x5F, 0x01}},
	{StartupAnimation2, KindImage, Identifier{0x58, 0x48, 0xD0, 0x5F, 0x02}},
	{StartupAnimation3, KindImage, Identifier{0x58, 0x48, 0xD0, 0x5F, 0x03}},
	{StartupAnimation4, KindImage, Identifier{0x58, 0x48, 0xD0, 0x5F, 0x04}},
	{StartupAnimation5, KindImage, Identifier{0x58, 0x48, 0xD0, 0x5F, 0x05}},
	{StartupAnimation6, KindImage, Identifier{0x58, 0x48, 0xD0, 0x5F, 0x06}},
	{StartupAnimation7, KindImage, Identifier{0x58, 0x48, 0xD0, 0x5F, 0x07}},
	{StartupAnimation8, KindImage, Identifier{0x58, 0x48, 0xD0, 0x5F, 0x08}},
	{StartupAnimation9, KindImage, Identifier{0x58, 0x48, 0xD0, 0x5F, 0x09}},
	{StartupAnimation10, KindImage, Identifier{0x58, 0x48, 0xD0, 0x5F, 0x0A}},
	{StartupAnimation11, KindImage, Identifier{0x58, 0x48, 0xD0, 0x5F, 0x0B}},
	{StartupAnimation12, KindImage, Identifier{0x58, 0x48, 0xD0, 0x5F, 0x0C}},
	{Person1Large, KindImage, Identifier{0x15, 0x75, 0x26, 0x54, 0xC4}},
	{Person1SmallPressed, KindImage, Identifier{0x18, 0x91, 0xBA, 0xDC, 0x00}},
	{Person1SmallNotPressed, KindImage, Identifier{0x25, 0x51, 0x22, 0xDF, 0xD6}},
	{Person3Large, KindImage, Identifier{0x55, 0x68, 0x79, 0x53, 0x25}},
	{Person3SmallPressed, KindImage, Identifier{0x89, 0x28, 0xCD, 0xF9, 0x33}},
	{Person3SmallNotPressed, KindImage, Identifier{0x78, 0x98, 0xD9, 0x6B, 0x58}},
	{Person2Large, KindImage, Identifier{0xDF, 0x34, 0x97, 0xAC, 0x00}},
	{Person2SmallPressed, KindImage, Identifier{0xEA, 0xCB, 0x59, 0x56, 0x25}},
	{Person2SmallNotPressed, KindImage, Identifier{0xBE, 0x52, 0x32, 0x87, 0x62}},
	{Person4Large, KindImage, Identifier{0x62, 0x55, 0x20, 0x99, 0x01}},
	{Person4SmallPressed, KindImage, Identifier{0x62, 0x55, 0x20, 0x99, 0x02}},
	{Person4SmallNotPressed, KindImage, Identifier{0x62, 0x55, 0x20, 0x99, 0x03}},
	{AaronLarge, KindImage, Identifier{0x54, 0x99, 0x98, 0x75, 0x00}},
	{GithubLogoLight, KindImage, Identifier{0xDF, 0xA3, 0x77, 0x86, 0x51}},
	{GithubLogo, KindImage, Identifier{0xDF, 0xA3, 0x77, 0x86, 0x50}},
	{LinkedinLogo, KindImage, Identifier{0x65, 0x4D, 0x6F, 0x45, 0x80}},
	{SkillsArm, KindImage, Identifier{0xDA, 0x52, 0x55, 0x96, 0xD0}},
	{SkillsCircuit, KindImage, Identifier{0x65, 0x20, 0x02, 0x02, 0x98}},
	{SkillsC, KindImage, Identifier{0x58, 0xAD, 0xFD, 0xFC, 0x54}},
	{SkillsEquipment, KindImage, Identifier{0xEC, 0x89, 0x81, 0x16, 0x51}},
	{SkillsPcb, KindImage, Identifier{0x65, 0x18, 0x9D, 0xAF, 0x10}},
	{SkillsSolder, KindImage, Identifier{0x55, 0x5D, 0x5A, 0xF5, 0x15}},
	{SlidePortfolioAcqAdc, KindImage, Identifier{0x56, 0x72, 0x93, 0x05, 0xDF}},
	{SlidePortfolioAcqBode, KindImage, Identifier{0xAB, 0x99, 0x8B, 0xE0, 0x00}},
	{SlidePortfolioAcqBreadboard, KindImage, Identifier{0xBE, 0xA0, 0x92, 0x34, 0x80}},
	{SlidePortfolioAcqGui, KindImage, Identifier{0x98, 0x45, 0x60, 0x98, 0x45}},
	{SlidePortfolioAcqFilter, KindImage, Identifier{0x00, 0x78, 0x50, 0x65, 0x40}},
	{SlidePortfolioAcqMemory, KindImage, Identifier{0x21, 0x54, 0x55, 0x41, 0x25}},
	{SlidePortfolioFoboCode, KindImage, Identifier{0x65, 0x74, 0x88, 0x77, 0x45}},
	{SlidePortfolioFoboStanding, KindImage, Identifier{0x20, 0x50, 0x40, 0x55, 0x01}},
	{SlidePortfolioFoboFritzing, KindImage, Identifier{0xEE, 0x65, 0x94, 0xE5, 0x00}},
	{SlidePortfolioFoboLeg, KindImage, Identifier{0x01, 0x10, 0x25, 0x80, 0xFF}},
	{SlidePortfolioTamogatchiCode, KindImage, Identifier{0x76, 0x45, 0x65, 0x4E, 0x0F}},
	{SlidePortfolioTamogatchiCase, KindImage, Identifier{0x31, 0x25, 0x61, 0x10, 0x01}},
	{SlidePortfolioTamogatchiPcb3D, KindImage, Identifier{0x98, 0x45, 0x25, 0x20, 0x00}},
	{SlidePortfolioTamogatchiPcbactual, KindImage, Identifier{0x87, 0x95, 0x22, 0x54, 0x20}},
	{SlidePortfolioTamogatchiPerf, KindImage, Identifier{0xAA, 0xBE, 0xF1, 0x58, 0x50}},
	{SlidePortfolioOtherCandyMain, KindImage, Identifier{0xBA, 0xC0, 0x09, 0x82, 0x80}},
	{SlidePortfolioOtherCandyMinor, KindImage, Identifier{0x04, 0x05, 0x50, 0x56, 0x44}},
	{SlidePortfolioOtherWorkshop, KindImage, Identifier{0x00, 0x07, 0x8B, 0xEF, 0xA0}},
	{SlidePortfolioOtherUA741, KindImage, Identifier{0x51, 0x56, 0x16, 0x51, 0x21}},
	{SlidePortfolioOtherRecorder, KindImage, Identifier{0x65, 0x1F, 0xCA, 0x58, 0x00}},
	{PortfolioFobo1Audio, KindAudio, Identifier{0x63, 0x49, 0x53, 0x83, 0x63}},
	{PortfolioFobo2Audio, KindAudio, Identifier{0x42, 0x41, 0x48, 0x50, 0x47}},
	{PortfolioFobo3Audio, KindAudio, Identifier{0x37, 0x47, 0x57, 0x69, 0x96}},
	{PortfolioFobo4Audio, KindAudio, Identifier{0x71, 0x70, 0x84, 0x78, 0x99}},
	{PortfolioGameboard1Audio, KindAudio, Identifier{0x39, 0x38, 0x75, 0x80, 0x35}},
	{PortfolioGameboard2Audio, KindAudio, Identifier{0x45, 0x54, 0x64, 0x46, 0x97}},
	{PortfolioGameboard3Audio, KindAudio, Identifier{0x55, 0x53, 0x72, 0x32, 0x23}},
	{PortfolioGameboard4Audio, KindAudio, Identifier{0x82, 0x28, 0xA6, 0x4F, 0x76}},
	{PortfolioGameboard5Audio, KindAudio, Identifier{0x67, 0x54, 0x25, 0x9B, 0x4B}},
	{PortfolioData1Audio, KindAudio, Identifier{0x76, 0x72, 0x65, 0x89, 0x91}},
	{PortfolioData2Audio, KindAudio, Identifier{0x72, 0x66, 0x59, 0x45, 0x77}},
	{PortfolioData3Audio, KindAudio, Identifier{0x88, 0x78, 0x56, 0x6E, 0x6F}},
	{PortfolioData4Audio, KindAudio, Identifier{0x55, 0x80, 0x90, 0x91, 0x85}},
	{PortfolioData5Audio, KindAudio, Identifier{0x69, 0x77, 0x88, 0x99, 0x40}},
	{PortfolioData6Audio, KindAudio, Identifier{0x46, 0x49, 0x88, 0x59, 0x95}},
	{PortfolioCandymainAudio, KindAudio, Identifier{0x7D, 0x80, 0x7B, 0x76, 0x79}},
	{PortfolioCandy3DAudio, KindAudio, Identifier{0x80, 0x7B, 0x76, 0x81, 0x7D}},
	{PortfolioWorkshopAudio, KindAudio, Identifier{0x81, 0x75, 0x7B, 0x72, 0x73}},
	{PortfolioUa741Audio, KindAudio, Identifier{0x72, 0x70, 0x82, 0x70, 0x73}},
	{PortfolioVoiceAudio, KindAudio, Identifier{0x71, 0x72, 0x78, 0x74, 0x84}},
	{LanguagesMainScreen, KindImage, Identifier{0xEC, 0xB3, 0x51, 0x65, 0x50}},
	{GermanAudio, KindAudio, Identifier{0x01, 0x28, 0x15, 0x72, 0x02}},
	{SpanishAudio, KindAudio, Identifier{0x01, 0x28, 0x15, 0x72, 0x03}},
	{GermanImage, KindImage, Identifier{0x01, 0x28, 0x15, 0x72, 0x04}},
	{SpanishImage, KindImage, Identifier{0x01, 0x28, 0x15, 0x72, 0x05}},
	{AboutMeMainMenu, KindImage, Identifier{0x58, 0x45, 0x56, 0x45, 0x22}},
	{AboutMeMainEducation, KindImage, Identifier{0x68, 0x55, 0x98, 0x45, 0x00}},
	{AboutMeMainGoals, KindImage, Identifier{0xAD, 0x5A, 0x20, 0x10, 0x30}},
	{AboutMeMainHobbies, KindImage, Identifier{0x50, 0x90, 0x19, 0x68, 0xB0}},
	{AboutMeMainInterests, KindImage, Identifier{0x90, 0x08, 0x55, 0x46, 0xBC}},
	{AboutMeMainExperience, KindImage, Identifier{0xBD, 0xEF, 0x25, 0x45, 0x50}},
	{AboutMeSubEducation, KindImage, Identifier{0x48, 0x51, 0x1B, 0x56, 0x56}},
	{AboutMeSubGoals, KindImage, Identifier{0x05, 0x78, 0xB0, 0x66, 0x30}},
	{AboutMeSubHobbies, KindImage, Identifier{0xCD, 0x0B, 0xE5, 0x98, 0x80}},
	{AboutMeSubInterests, KindImage, Identifier{0x56, 0x89, 0x5A, 0x55, 0xD8}},
	{AboutMeSubExperience, KindImage, Identifier{0x01, 0xA0, 0xB0, 0xD5, 0x4D}},
	{SlideDeviceIntroDrawing, KindImage, Identifier{0x85, 0x71, 0x52, 0x33, 0x00}},
	{SlideDeviceIntroModel, KindImage, Identifier{0x85, 0x71, 0x52, 0x33, 0x01}},
	{SlideDeviceMechanicalPrototype, KindImage, Identifier{0x85, 0x71, 0x52, 0x33, 0x02}},
	{SlideDeviceMechanicalFinal, KindImage, Identifier{0x85, 0x71, 0x52, 0x33, 0x03}},
	{SlideDeviceMechanicalProcessing, KindImage, Identifier{0x85, 0x71, 0x52, 0x33, 0x0E}},
	{SlideDeviceHardwareSchematic, KindImage, Identifier{0x85, 0x71, 0x52, 0x33, 0x04}},
	{SlideDeviceHardwareLayout, KindImage, Identifier{0x85, 0x71, 0x52, 0x33, 0x05}},
	{SlideDeviceHardwarePCB, KindImage, Identifier{0x85, 0x71, 0x52, 0x33, 0x06}},
	{SlideDeviceHardwareSolder, KindImage, Identifier{0x85, 0x71, 0x52, 0x33, 0x07}},
	{SlideDeviceHardwareFirmware, KindImage, Identifier{0x85, 0x71, 0x52, 0x33, 0x08}},
	{SlideDeviceHardwareJig, KindImage, Identifier{0x85, 0x71, 0x52, 0x33, 0x09}},
	{SlideDeviceProductPhoto, KindImage, Identifier{0x85, 0x71, 0x52, 0x33, 0x0A}},
	{SlideDeviceProductBox, KindImage, Identifier{0x85, 0x71, 0x52, 0x33, 0x0B}},
	{SlideDeviceProductFoam, KindImage, Identifier{0x85, 0x71, 0x52, 0x33, 0x0C}},
	{SlideDeviceProductManual, KindImage, Identifier{0x85, 0x71, 0x52, 0x33, 0x0D}},
	{DeviceStart1Audio, KindAudio, Identifier{0x66, 0x25, 0x91, 0x88, 0x00}},
	{DeviceStart2Audio, KindAudio, Identifier{0x66, 0x25, 0x91, 0x88, 0x01}},
	{DeviceMechanical1Audio, KindAudio, Identifier{0x66, 0x25, 0x91, 0x88, 0x02}},
	{DeviceMechanical2Audio, KindAudio, Identifier{0x66, 0x25, 0x91, 0x88, 0x03}},
	{DeviceMechanical3Audio, KindAudio, Identifier{0x66, 0x25, 0x91, 0x88, 0x04}},
	{DeviceHwfw1Audio, KindAudio, Identifier{0x66, 0x25, 0x91, 0x88, 0x05}},
	{DeviceHwfw2Audio, KindAudio, Identifier{0x66, 0x25, 0x91, 0x88, 0x06}},
	{DeviceHwfw3Audio, KindAudio, Identifier{0x66, 0x25, 0x91, 0x88, 0x07}},
	{DeviceHwfw4Audio, KindAudio, Identifier{0x66, 0x25, 0x91, 0x88, 0x08}},
	{DeviceHwfw5Audio, KindAudio, Identifier{0x66, 0x25, 0x91, 0x88, 0x09}},
	{DeviceHwfw6Audio, KindAudio, Identifier{0x66, 0x25, 0x91, 0x88, 0x0A}},
	{DeviceProduct1Audio, KindAudio, Identifier{0x66, 0x25, 0x91, 0x88, 0x0B}},
	{DeviceProduct2Audio, KindAudio, Identifier{0x66, 0x25, 0x91, 0x88, 0x0C}},
	{DeviceProduct3Audio, KindAudio, Identifier{0x66, 0x25, 0x91, 0x88, 0x0D}},
	{DeviceProduct4Audio, KindAudio, Identifier{0x66, 0x25, 0x91, 0x88, 0x0E}},
	{IntroAudio, KindAudio, Identifier{0x01, 0x28, 0x15, 0x72, 0x01}},
}

package services

// Templates holds the offline poem table keyed by style then theme.
var Templates = map[string]map[string][]string{
	StyleHaiku: {
		"nature": {
			"Autumn leaves falling,\nWhispers of the changing wind,\nTime's gentle passage.",
			"Morning dew glistens\nOn grass blades kissed by sunrise,\nNature awakens.",
			"Cherry blossoms bloom,\nPetals dance on spring's soft breeze,\nBeauty's fleeting grace.",
		},
		"love": {
			"Hearts beat in rhythm,\nTwo souls dancing in moonlight,\nLove's eternal song.",
			"Your whispered sweet words\nFloat like petals on spring wind,\nMy heart blooms with joy.",
			"In your gentle eyes,\nI see tomorrow's promise,\nForever begins.",
		},
		"technology": {
			"Circuits hum with life,\nDigital dreams flow like streams,\nCode becomes poetry.",
			"Pixels paint the sky,\nVirtual worlds come alive,\nTechnology breathes.",
			"Binary heartbeats\nPulse through fiber optic veins,\nThe future connects.",
		},
	},
	StyleFreeVerse: {
		"nature": {
			"The forest holds its breath\nas morning mist rises\nfrom the sleeping earth,\neach dewdrop a prism\nrefracting the dawn\ninto countless rainbows.",
			"Mountains stand as witnesses\nto the passage of time,\ntheir stone faces etched\nwith stories of wind and rain,\npatient guardians\nof our fleeting dreams.",
			"Rivers carry secrets\nfrom source to sea,\nwhispering ancient songs\nto the willows that bend\nto listen and learn.",
		},
		"love": {
			"In the space between\nyour breathing and mine,\nlove grows like wildflowers\nin an abandoned field,\nbeautiful and untamed.",
			"Your laughter echoes\nthrough the chambers of my heart,\nfilling empty rooms\nwith golden sunlight\nand the promise of forever.",
			"We are two satellites\norbiting the same star,\ndestined to dance\nin cosmic harmony\nuntil the universe\nforgets our names.",
		},
		"technology": {
			"In circuits of silicon dreams,\nWe dance with digital ghosts,\nCreating beauty from code,\nPoetry born of algorithms.",
			"Fiber optic veins\ncarry the pulse of humanity\nacross continents,\nconnecting hearts\nthat beat in binary rhythm.",
			"Artificial minds\nlearn to love through data,\nfinding poetry\nin the patterns\nwe never knew we made.",
		},
	},
}

// TemplatesFor returns the candidates for a style and theme, falling back to
// nature haiku.
func TemplatesFor(style string, theme string) []string {
	if byTheme, ok := Templates[style]; ok {
		if poems := byTheme[theme]; len(poems) > 0 {
			return poems
		}
	}
	return Templates[StyleHaiku]["nature"]
}

package seed

// defaultLeagues are the Winter 2026 GTA leagues.
var defaultLeagues = []LeagueTemplate{
	{
		ID:                       "jam_soccer_winter_2026",
		Name:                     "JAM Toronto: Indoor Turf 6s",
		Sport:                    "Soccer",
		Season:                   "Winter 2026",
		Region:                   "Toronto, ON",
		Description:              "Competitive indoor turf soccer at The Hangar. 6v6 format with certified referees.",
		StartsInDays:             14,
		RegistrationClosesInDays: 7,
		IndividualPrice:          185.00,
		TeamPrice:                1450.00,
		MaxTeams:                 12,
	},
	{
		ID:                       "hoopdome_bball_winter",
		Name:                     "HoopDome House League",
		Sport:                    "Basketball",
		Season:                   "Winter 2026",
		Region:                   "North York, ON",
		Description:              "Premier basketball house league in the GTA. High-intensity play for seasoned athletes.",
		StartsInDays:             10,
		RegistrationClosesInDays: 5,
		IndividualPrice:          210.00,
		TeamPrice:                1800.00,
		MaxTeams:                 8,
	},
	{
		ID:                       "xtsc_soccer_saturday",
		Name:                     "XTSC: Lamport Saturdays",
		Sport:                    "Soccer",
		Season:                   "Winter 2026",
		Region:                   "Toronto, ON",
		Description:              "Saturday night lights at Lamport Stadium. Casual but organized 7v7 play.",
		StartsInDays:             20,
		RegistrationClosesInDays: 12,
		IndividualPrice:          160.00,
		TeamPrice:                1300.00,
		MaxTeams:                 16,
	},
}

// defaultVenues is the curated list of major GTA venues.
var defaultVenues = []Venue{
	// Toronto
	{ID: "to_1", Name: "Cherry Beach Sports Fields", Sport: "Soccer", Address: "275 Unwin Ave, Toronto, ON", Image: "soccerball"},
	{ID: "to_2", Name: "Regent Park Athletic Grounds", Sport: "Soccer", Address: "480 Shuter St, Toronto, ON", Image: "soccerball"},
	{ID: "to_3", Name: "Eglinton Flats", Sport: "Soccer", Address: "3601 Eglinton Ave W, Toronto, ON", Image: "soccerball"},
	{ID: "to_4", Name: "Sunnybrook Park", Sport: "Soccer", Address: "1132 Leslie St, Toronto, ON", Image: "soccerball"},
	{ID: "to_5", Name: "Christie Pits Park", Sport: "Basketball", Address: "750 Bloor St W, Toronto, ON", Image: "basketball"},
	{ID: "to_6", Name: "Underpass Park", Sport: "Basketball", Address: "29 Lower River St, Toronto, ON", Image: "basketball"},
	{ID: "to_7", Name: "Mattamy Athletic Centre", Sport: "Hockey", Address: "50 Carlton St, Toronto, ON", Image: "hockey.puck"},
	{ID: "to_8", Name: "Scotiabank Pond", Sport: "Hockey", Address: "57 Carl Hall Rd, Toronto, ON", Image: "hockey.puck"},
	{ID: "to_9", Name: "Withrow Park", Sport: "Hockey", Address: "725 Logan Ave, Toronto, ON", Image: "hockey.puck"},
	{ID: "to_10", Name: "High Park Tennis Club", Sport: "Tennis", Address: "1873 Bloor St W, Toronto, ON", Image: "tennisball"},
	{ID: "to_11", Name: "Trinity Bellwoods Park", Sport: "Tennis", Address: "790 Queen St W, Toronto, ON", Image: "tennisball"},
	{ID: "to_12", Name: "Downsview Park", Sport: "Soccer", Address: "35 Carl Hall Rd, Toronto, ON", Image: "soccerball"},
	{ID: "to_13", Name: "Lamport Stadium", Sport: "Soccer", Address: "1155 King St W, Toronto, ON", Image: "soccerball"},
	{ID: "to_14", Name: "Varsity Stadium", Sport: "Soccer", Address: "299 Bloor St W, Toronto, ON", Image: "soccerball"},
	{ID: "to_15", Name: "Monarch Park Stadium", Sport: "Soccer", Address: "1 Parkmount Rd, Toronto, ON", Image: "soccerball"},

	// Mississauga
	{ID: "mis_1", Name: "Paramount Fine Foods Centre", Sport: "Soccer", Address: "5500 Rose Cherry Pl, Mississauga, ON", Image: "soccerball"},
	{ID: "mis_2", Name: "Iceland Mississauga", Sport: "Hockey", Address: "705 Matheson Blvd E, Mississauga, ON", Image: "hockey.puck"},
	{ID: "mis_3", Name: "Hershey Centre Fields", Sport: "Basketball", Address: "5600 Rose Cherry Pl, Mississauga, ON", Image: "basketball"},
	{ID: "mis_4", Name: "Mississauga Valley Community Centre", Sport: "Tennis", Address: "1275 Mississauga Valley Blvd, Mississauga, ON", Image: "tennisball"},
	{ID: "mis_5", Name: "Churchill Meadows Community Centre", Sport: "Soccer", Address: "5320 Ninth Line, Mississauga, ON", Image: "soccerball"},
	{ID: "mis_6", Name: "Courtneypark Athletic Fields", Sport: "Soccer", Address: "600 Courtneypark Dr W, Mississauga, ON", Image: "soccerball"},

	// Brampton
	{ID: "bram_1", Name: "Save Max Sports Centre", Sport: "Soccer", Address: "1495 Sandalwood Pkwy E, Brampton, ON", Image: "soccerball"},
	{ID: "bram_2", Name: "CAA Centre", Sport: "Hockey", Address: "7575 Kennedy Rd S, Brampton, ON", Image: "hockey.puck"},
	{ID: "bram_3", Name: "Creditview Sandalwood Park", Sport: "Soccer", Address: "10530 Creditview Rd, Brampton, ON", Image: "soccerball"},
	{ID: "bram_4", Name: "Gore Meadows Community Centre", Sport: "Basketball", Address: "10150 The Gore Rd, Brampton, ON", Image: "basketball"},

	// Vaughan / Markham / Richmond Hill
	{ID: "vau_1", Name: "The Hangar Sport Events Centre", Sport: "Soccer", Address: "75 Carl Hall Rd, North York, ON", Image: "soccerball"},
	{ID: "vau_2", Name: "Zanchin Automotive Soccer Centre", Sport: "Soccer", Address: "7601 Martin Grove Rd, Vaughan, ON", Image: "soccerball"},
	{ID: "mark_1", Name: "Markham Pan Am Centre", Sport: "Volleyball", Address: "16 Main St Unionville, Markham, ON", Image: "volleyball"},
	{ID: "mark_2", Name: "Angus Glen Community Centre", Sport: "Tennis", Address: "3990 Major Mackenzie Dr E, Markham, ON", Image: "tennisball"},
	{ID: "rich_1", Name: "Richmond Green Sports Centre", Sport: "Soccer", Address: "1300 Elgin Mills Rd E, Richmond Hill, ON", Image: "soccerball"},
	{ID: "rich_2", Name: "Elvis Stojko Arena", Sport: "Hockey", Address: "350 16th Ave, Richmond Hill, ON", Image: "hockey.puck"},
}

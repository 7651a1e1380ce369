package database

import (
	"lstours/models"
)

func seedPackages() []models.TourPackage {
	return []models.TourPackage{
		{
			ID:               "pkg-001",
			Slug:             "classic-sri-lanka-highlights",
			Title:            "Classic Sri Lanka Highlights",
			ShortDescription: "The essential circuit: ancient cities, hill country tea estates and the southern coast.",
			Description:      "A week-long loop through Sri Lanka's cultural triangle, the misty hill country and the fortified coast of Galle. Ideal for first-time visitors who want the full picture without rushing.",
			DurationDays:     7,
			DurationNights:   6,
			PriceFromUSD:     1150,
			Regions:          []string{"Cultural Triangle", "Hill Country", "South Coast"},
			Interests:        []string{"culture", "tea", "beach"},
			Rating:           4.8,
			ReviewCount:      214,
			HeroImage:        "https://images.unsplash.com/photo-1586613835342-7d5e75e1d77b?w=1600",
			Images: []string{
				"https://images.unsplash.com/photo-1586613835342-7d5e75e1d77b?w=600",
				"https://images.unsplash.com/photo-1567157577867-05ccb1388e66?w=600",
				"https://images.unsplash.com/photo-1552733407-5d5c46c3bb3b?w=600",
			},
			Inclusions:  []string{"Private air-conditioned vehicle", "English-speaking chauffeur guide", "Daily breakfast", "All entrance fees"},
			Exclusions:  []string{"International flights", "Lunch and dinner", "Travel insurance"},
			Highlights:  []string{"Sigiriya Rock Fortress at sunrise", "Kandy Temple of the Tooth", "Nine Arch Bridge train ride", "Galle Fort ramparts walk"},
			TravelStyle: models.StyleMid,
			Featured:    true,
			ItineraryDays: []models.ItineraryDay{
				{
					Day:         1,
					Title:       "Colombo Arrival & City Stroll",
					Description: "Arrive at Bandaranaike International Airport and transfer to Colombo. Ease into the island with an evening walk along Galle Face Green.",
					Activities:  []string{"airport pickup and hotel transfer", "sunset walk at Galle Face Green", "street food tasting at the Green"},
					Meals:       []string{"dinner"},
				},
				{
					Day:           2,
					Title:         "Dambulla Caves & Sigiriya Rock Fortress",
					Description:   "Drive north into the cultural triangle. Climb the rock fortress in the late afternoon light.",
					Activities:    []string{"visit the Dambulla cave temples", "lunch in a village home", "climb Sigiriya rock fortress", "sunset from Pidurangala viewpoint"},
					Meals:         []string{"breakfast", "lunch"},
					Accommodation: "Sigiriya Village Hotel",
				},
				{
					Day:           3,
					Title:         "Kandy & the Temple of the Tooth",
					Description:   "Morning drive to Kandy via a spice garden in Matale. Evening ceremony at the temple.",
					Activities:    []string{"spice garden visit in Matale", "walk around Kandy Lake", "evening temple ceremony"},
					Meals:         []string{"breakfast"},
					Accommodation: "Thilanka Hotel, Kandy",
				},
				{
					Day:         4,
					Title:       "Hill Country Train to Ella",
					Description: "Board the famous blue train through tea country. The slow climb past Nuwara Eliya is the most scenic stretch of railway on the island.",
					Activities:  []string{"scenic train ride to Ella", "tea factory tour en route", "evening at an Ella cafe"},
					Meals:       []string{"breakfast"},
				},
				{
					Day:           5,
					Title:         "Ella — Little Adam's Peak & Nine Arch Bridge",
					Description:   "A gentle hiking day among the tea terraces.",
					Activities:    []string{"sunrise hike up Little Adam's Peak", "walk the Nine Arch Bridge", "swim at Ravana Falls"},
					Meals:         []string{"breakfast"},
					Accommodation: "98 Acres Resort, Ella",
				},
				{
					Day:         6,
					Title:       "Yala Safari & South Coast Drive",
					Description: "Leave the hills for the dry-zone plains. Afternoon game drive in Yala National Park before continuing to the coast.",
					Activities:  []string{"afternoon jeep safari in Yala", "leopard and elephant spotting", "drive to the south coast"},
					Meals:       []string{"breakfast", "lunch"},
				},
				{
					Day:         7,
					Title:       "Galle Fort & Airport Departure",
					Description: "Morning inside the Dutch fort, then the expressway back to the airport.",
					Activities:  []string{"walk the Galle Fort ramparts", "browse the fort boutiques", "transfer to the airport"},
					Meals:       []string{"breakfast"},
				},
			},
		},
		{
			ID:               "pkg-002",
			Slug:             "hill-country-tea-trails",
			Title:            "Hill Country Tea Trails",
			ShortDescription: "Slow travel through Ceylon tea country: estate bungalows, factory tours and mountain trains.",
			Description:      "Five unhurried days between Hatton, Nuwara Eliya and Ella, staying on working tea estates. Built for travellers who measure a day in pots of tea rather than kilometres.",
			DurationDays:     5,
			DurationNights:   4,
			PriceFromUSD:     890,
			Regions:          []string{"Hill Country"},
			Interests:        []string{"tea", "hiking", "scenery"},
			Rating:           4.9,
			ReviewCount:      87,
			HeroImage:        "https://images.unsplash.com/photo-1588598198516-5f89f0e300c6?w=1600",
			Images: []string{
				"https://images.unsplash.com/photo-1588598198516-5f89f0e300c6?w=600",
				"https://images.unsplash.com/photo-1566766189268-73acf97f9de7?w=600",
			},
			Inclusions:  []string{"Estate bungalow accommodation", "All meals", "Private transfers", "Reserved train seats"},
			Exclusions:  []string{"International flights", "Personal expenses"},
			Highlights:  []string{"Night in a planter's bungalow", "Tea plucking with estate workers", "Horton Plains and World's End", "Ella's Nine Arch Bridge"},
			TravelStyle: models.StyleLuxury,
			Featured:    true,
			ItineraryDays: []models.ItineraryDay{
				{
					Day:           1,
					Title:         "Colombo to Hatton Tea Estates",
					Description:   "Morning pickup in Colombo and a climbing drive to Hatton. Afternoon introduction to the estate.",
					Activities:    []string{"drive to Hatton through rubber country", "estate orientation walk", "high tea on the bungalow lawn"},
					Meals:         []string{"lunch", "dinner"},
					Accommodation: "Ceylon Tea Trails Bungalow",
				},
				{
					Day:           2,
					Title:         "Tea Plucking & Factory Morning",
					Description:   "Join the pluckers at first light, then follow the leaf through the factory. Afternoon at leisure by the lake.",
					Activities:    []string{"tea plucking with the estate crew", "factory tour with the tea maker", "tasting flight of estate grades"},
					Meals:         []string{"breakfast", "lunch", "dinner"},
					Accommodation: "Ceylon Tea Trails Bungalow",
				},
				{
					Day:           3,
					Title:         "Horton Plains & Nuwara Eliya",
					Description:   "Pre-dawn start for World's End before the mist closes in. Afternoon in the old colonial hill station.",
					Activities:    []string{"hike Horton Plains to World's End", "lunch at the Grand Hotel", "stroll Victoria Park"},
					Meals:         []string{"breakfast", "lunch"},
					Accommodation: "Jetwing St. Andrew's, Nuwara Eliya",
				},
				{
					Day:           4,
					Title:         "Train to Ella & Tea Terraces",
					Description:   "The celebrated stretch of the upcountry line, then an easy evening among Ella's cafes.",
					Activities:    []string{"ride the blue train from Nanu Oya", "walk the tea terraces above town"},
					Meals:         []string{"breakfast"},
					Accommodation: "98 Acres Resort, Ella",
				},
				{
					Day:         5,
					Title:       "Ella Morning & Departure",
					Description: "A last sunrise over the gap, then the drive back to Colombo or onward to the coast.",
					Activities:  []string{"sunrise at Ella Gap", "transfer to Colombo"},
					Meals:       []string{"breakfast"},
				},
			},
		},
		{
			ID:               "pkg-003",
			Slug:             "wildlife-safari-week",
			Title:            "Wildlife Safari Week",
			ShortDescription: "Leopards in Yala, elephants in Udawalawe and blue whales off Mirissa in one loop.",
			Description:      "Eight days across the island's best national parks and marine sanctuaries with expert trackers. Timed game drives at dawn and dusk maximise sightings.",
			DurationDays:     8,
			DurationNights:   7,
			PriceFromUSD:     1680,
			Regions:          []string{"South Coast", "Dry Zone"},
			Interests:        []string{"wildlife", "photography", "nature"},
			Rating:           4.7,
			ReviewCount:      132,
			HeroImage:        "https://images.unsplash.com/photo-1549366021-9f761d450615?w=1600",
			Images: []string{
				"https://images.unsplash.com/photo-1549366021-9f761d450615?w=600",
				"https://images.unsplash.com/photo-1564760055775-d63b17a55c44?w=600",
			},
			Inclusions:  []string{"All park fees and jeep hire", "Naturalist guide throughout", "Full board", "Whale watching boat"},
			Exclusions:  []string{"International flights", "Camera permits", "Gratuities"},
			Highlights:  []string{"Dawn leopard drives in Yala", "Elephant herds at Udawalawe", "Blue whale watching at Mirissa", "Bundala's flamingo lagoons"},
			TravelStyle: models.StyleMid,
			Featured:    false,
			ItineraryDays: []models.ItineraryDay{
				{
					Day:           1,
					Title:         "Colombo to Udawalawe",
					Description:   "Transfer south-east to elephant country. Evening visit to the transit home feeding.",
					Activities:    []string{"drive to Udawalawe", "elephant transit home visit"},
					Meals:         []string{"lunch", "dinner"},
					Accommodation: "Grand Udawalawe Safari Resort",
				},
				{
					Day:           2,
					Title:         "Udawalawe Safari Day",
					Description:   "Morning and afternoon game drives among some of Asia's most reliable elephant herds.",
					Activities:    []string{"dawn game drive", "midday rest at the lodge", "afternoon game drive", "birding at the reservoir"},
					Meals:         []string{"breakfast", "lunch", "dinner"},
					Accommodation: "Grand Udawalawe Safari Resort",
				},
				{
					Day:           3,
					Title:         "Yala National Park",
					Description:   "Cross to Tissamaharama for the island's premier leopard territory.",
					Activities:    []string{"transfer to Tissamaharama", "afternoon safari in Yala block one"},
					Meals:         []string{"breakfast", "dinner"},
					Accommodation: "Jetwing Yala",
				},
				{
					Day:           4,
					Title:         "Yala Safari Full Day",
					Description:   "A full day inside the park with a picnic lunch at a tank.",
					Activities:    []string{"full-day safari with picnic lunch", "leopard tracking with the ranger", "sunset at Patanangala beach rock"},
					Meals:         []string{"breakfast", "lunch"},
					Accommodation: "Jetwing Yala",
				},
				{
					Day:         5,
					Title:       "Bundala Wetlands",
					Description: "A quieter morning among the lagoons and dunes of the Ramsar wetland.",
					Activities:  []string{"morning birding drive in Bundala", "afternoon at leisure"},
					Meals:       []string{"breakfast", "dinner"},
				},
				{
					Day:           6,
					Title:         "Coast Drive to Mirissa",
					Description:   "Follow the southern shoreline west to the whale watching harbour.",
					Activities:    []string{"coastal drive to Mirissa", "evening on the beach"},
					Meals:         []string{"breakfast"},
					Accommodation: "Lantern Boutique Hotel, Mirissa",
				},
				{
					Day:           7,
					Title:         "Mirissa Whale Watching",
					Description:   "Out before dawn for blue whales and spinner dolphins on the continental shelf.",
					Activities:    []string{"blue whale boat excursion", "afternoon snorkelling", "seafood dinner on the sand"},
					Meals:         []string{"breakfast", "lunch"},
					Accommodation: "Lantern Boutique Hotel, Mirissa",
				},
				{
					Day:         8,
					Title:       "Departure via Galle",
					Description: "A short stop at the fort before the expressway to the airport.",
					Activities:  []string{"Galle Fort stop", "airport transfer"},
					Meals:       []string{"breakfast"},
				},
			},
		},
		{
			ID:               "pkg-004",
			Slug:             "southern-beaches-escape",
			Title:            "Southern Beaches Escape",
			ShortDescription: "Four lazy days between Unawatuna, Mirissa and Tangalle.",
			Description:      "A short, budget-friendly beach hop along the south coast with nothing mandatory in it. Surf lessons, lagoon kayaks and seafood shacks are all optional extras.",
			DurationDays:     3,
			DurationNights:   2,
			PriceFromUSD:     340,
			Regions:          []string{"South Coast"},
			Interests:        []string{"beach", "surf", "relaxation"},
			Rating:           4.4,
			ReviewCount:      58,
			HeroImage:        "https://images.unsplash.com/photo-1507525428034-b723cf961d3e?w=1600",
			Images: []string{
				"https://images.unsplash.com/photo-1507525428034-b723cf961d3e?w=600",
				"https://images.unsplash.com/photo-1552733407-5d5c46c3bb3b?w=600",
			},
			Inclusions:  []string{"Beachfront guesthouse", "Daily breakfast", "Transfers between beaches"},
			Exclusions:  []string{"Surf lessons", "Lunch and dinner"},
			Highlights:  []string{"Unawatuna's sheltered bay", "Sunset at Coconut Tree Hill", "Tangalle's empty sands"},
			TravelStyle: models.StyleBudget,
			Featured:    false,
			ItineraryDays: []models.ItineraryDay{
				{
					Day:         1,
					Title:       "Unawatuna Beach Day",
					Description: "Arrive on the coast and do very little, excellently.",
					Activities:  []string{"check in at the bay", "swim and snorkel the reef"},
					Meals:       []string{"breakfast"},
				},
				{
					Day:           2,
					Title:         "Mirissa & Coconut Tree Hill",
					Description:   "A short hop east for the island's best-known sunset.",
					Activities:    []string{"morning surf lesson", "walk to Coconut Tree Hill at sunset"},
					Meals:         []string{"breakfast"},
					Accommodation: "Salt House, Mirissa",
				},
				{
					Day:         3,
					Title:       "Tangalle & Departure",
					Description: "Last swim at the quietest beach of the trip, then the drive back.",
					Activities:  []string{"beach morning at Tangalle", "transfer to Colombo"},
					Meals:       []string{"breakfast"},
				},
			},
		},
		{
			ID:               "pkg-005",
			Slug:             "grand-island-odyssey",
			Title:            "Grand Island Odyssey",
			ShortDescription: "Two weeks around the whole island, from Jaffna's islands to Galle's ramparts.",
			Description:      "The unabridged Sri Lanka: the Cultural Triangle, the east coast, the far north, tea country and the southern beaches in one sweeping, fourteen-day circuit.",
			DurationDays:     14,
			DurationNights:   13,
			PriceFromUSD:     2950,
			Regions:          []string{"Cultural Triangle", "North", "East Coast", "Hill Country", "South Coast"},
			Interests:        []string{"culture", "wildlife", "beach", "tea"},
			Rating:           4.9,
			ReviewCount:      96,
			HeroImage:        "https://images.unsplash.com/photo-1566766189268-73acf97f9de7?w=1600",
			Images: []string{
				"https://images.unsplash.com/photo-1586613835342-7d5e75e1d77b?w=600",
				"https://images.unsplash.com/photo-1567157577867-05ccb1388e66?w=600",
				"https://images.unsplash.com/photo-1588598198516-5f89f0e300c6?w=600",
				"https://images.unsplash.com/photo-1549366021-9f761d450615?w=600",
			},
			Inclusions:  []string{"Boutique accommodation throughout", "Private vehicle and guide", "All entrance fees", "Domestic flight Jaffna-Colombo"},
			Exclusions:  []string{"International flights", "Visas", "Lunch and dinner on beach days"},
			Highlights:  []string{"Anuradhapura's sacred city", "Nilaveli's white sand", "Jaffna's island causeways", "Adam's Peak pilgrim trail"},
			TravelStyle: models.StyleLuxury,
			Featured:    true,
			ItineraryDays: []models.ItineraryDay{
				{
					Day:           1,
					Title:         "Colombo Arrival",
					Description:   "Airport meet and greet, then a gentle first evening in the capital.",
					Activities:    []string{"airport pickup", "evening at Galle Face Green"},
					Meals:         []string{"dinner"},
					Accommodation: "Galle Face Hotel, Colombo",
				},
				{
					Day:           2,
					Title:         "Anuradhapura Sacred City",
					Description:   "North to the first capital. Cycle between dagobas that predate the Colosseum.",
					Activities:    []string{"cycle the sacred city", "see the Sri Maha Bodhi", "evening puja at Ruwanwelisaya"},
					Meals:         []string{"breakfast"},
					Accommodation: "Ulagalla Resort",
				},
				{
					Day:         3,
					Title:       "Polonnaruwa Ancient Ruins",
					Description: "The medieval capital's royal palaces and the stone Buddhas of Gal Vihara.",
					Activities:  []string{"explore the royal palace ruins", "Gal Vihara rock sculptures", "picnic by Parakrama Samudra"},
					Meals:       []string{"breakfast", "lunch"},
				},
				{
					Day:           4,
					Title:         "Sigiriya & Village Evening",
					Description:   "The rock fortress in the morning, a village tank at dusk.",
					Activities:    []string{"climb Sigiriya rock fortress", "catamaran ride on the village tank", "home-cooked village dinner"},
					Meals:         []string{"breakfast", "dinner"},
					Accommodation: "Water Garden Sigiriya",
				},
				{
					Day:           5,
					Title:         "Trincomalee & the East Coast",
					Description:   "Cross to the east for Koneswaram temple on its clifftop and the long white beaches north of town.",
					Activities:    []string{"Koneswaram temple visit", "swim at Uppuveli"},
					Meals:         []string{"breakfast"},
					Accommodation: "Trinco Blu by Cinnamon",
				},
				{
					Day:           6,
					Title:         "Nilaveli Beach & Pigeon Island",
					Description:   "Snorkelling over the coral of the marine national park.",
					Activities:    []string{"boat to Pigeon Island", "snorkel the reef", "beach afternoon"},
					Meals:         []string{"breakfast", "lunch"},
					Accommodation: "Trinco Blu by Cinnamon",
				},
				{
					Day:           7,
					Title:         "Jaffna Peninsula",
					Description:   "The long drive north through Elephant Pass into the Tamil heartland.",
					Activities:    []string{"drive to Jaffna", "Nallur Kandaswamy temple", "evening at the fort"},
					Meals:         []string{"breakfast"},
					Accommodation: "Jetwing Jaffna",
				},
				{
					Day:           8,
					Title:         "Jaffna Islands & Causeways",
					Description:   "Out along the causeways to Kayts and Karainagar, ending with palmyra toddy at dusk.",
					Activities:    []string{"causeway drive to the islands", "Casuarina beach swim", "Jaffna market walk"},
					Meals:         []string{"breakfast"},
					Accommodation: "Jetwing Jaffna",
				},
				{
					Day:           9,
					Title:         "Fly South & Kandy",
					Description:   "Domestic hop back to Colombo and on to the hill capital.",
					Activities:    []string{"morning flight to Colombo", "drive to Kandy", "temple ceremony at dusk"},
					Meals:         []string{"breakfast"},
					Accommodation: "Kings Pavilion, Kandy",
				},
				{
					Day:           10,
					Title:         "Kandy Gardens & Crafts",
					Description:   "Peradeniya's botanical gardens and the craft workshops of the Dumbara valley.",
					Activities:    []string{"Peradeniya botanical gardens", "Dumbara weaving workshop"},
					Meals:         []string{"breakfast"},
					Accommodation: "Kings Pavilion, Kandy",
				},
				{
					Day:           11,
					Title:         "Nuwara Eliya Tea Country",
					Description:   "Climb into the high country, factory tour included.",
					Activities:    []string{"tea factory and tasting", "stroll Gregory Lake"},
					Meals:         []string{"breakfast"},
					Accommodation: "Heritance Tea Factory",
				},
				{
					Day:         12,
					Title:       "Adam's Peak Pilgrimage",
					Description: "A night ascent with the pilgrims for sunrise above the clouds. Weather dependent.",
					Activities:  []string{"night climb of Adam's Peak", "sunrise at the summit", "afternoon rest"},
					Meals:       []string{"breakfast"},
				},
				{
					Day:           13,
					Title:         "Galle Fort & South Coast",
					Description:   "Down to the coast for a final night inside the Dutch walls.",
					Activities:    []string{"rampart walk at golden hour", "dinner in the fort"},
					Meals:         []string{"breakfast", "dinner"},
					Accommodation: "Fort Bazaar, Galle",
				},
				{
					Day:         14,
					Title:       "Airport Departure",
					Description: "Expressway transfer to Bandaranaike International for your flight home.",
					Activities:  []string{"airport transfer"},
					Meals:       []string{"breakfast"},
				},
			},
		},
		{
			ID:               "pkg-006",
			Slug:             "cultural-triangle-express",
			Title:            "Cultural Triangle Express",
			ShortDescription: "Sigiriya, Dambulla and Polonnaruwa in a tight long-weekend loop.",
			Description:      "Three days, three UNESCO sites. A fast, focused circuit of the ancient cities for travellers short on leave but long on curiosity.",
			DurationDays:     3,
			DurationNights:   2,
			PriceFromUSD:     420,
			Regions:          []string{"Cultural Triangle"},
			Interests:        []string{"culture", "history"},
			Rating:           4.5,
			ReviewCount:      73,
			HeroImage:        "https://images.unsplash.com/photo-1586613835342-7d5e75e1d77b?w=1600",
			Images: []string{
				"https://images.unsplash.com/photo-1586613835342-7d5e75e1d77b?w=600",
			},
			Inclusions:  []string{"Private car and driver", "Two nights near Sigiriya", "Entrance fees"},
			Exclusions:  []string{"Meals other than breakfast", "Balloon flights"},
			Highlights:  []string{"Sigiriya's mirror wall and frescoes", "Dambulla's painted caves", "Polonnaruwa by bicycle"},
			TravelStyle: models.StyleBudget,
			Featured:    false,
			ItineraryDays: []models.ItineraryDay{
				{
					Day:           1,
					Title:         "Dambulla Cave Temples",
					Description:   "Straight up from Colombo to the golden rock temple and its five painted caves.",
					Activities:    []string{"drive from Colombo", "Dambulla cave temple visit"},
					Meals:         []string{"breakfast"},
					Accommodation: "Sigiriya Jungles",
				},
				{
					Day:           2,
					Title:         "Sigiriya Rock Fortress",
					Description:   "Up the rock before the heat, frescoes and the lion staircase on the way.",
					Activities:    []string{"early climb of the rock fortress", "frescoes and mirror wall", "afternoon at the museum"},
					Meals:         []string{"breakfast"},
					Accommodation: "Sigiriya Jungles",
				},
				{
					Day:         3,
					Title:       "Polonnaruwa by Bicycle & Return",
					Description: "Pedal the medieval capital's compact ruins before the drive back.",
					Activities:  []string{"cycle the ancient city", "Gal Vihara Buddhas", "return drive to Colombo"},
					Meals:       []string{"breakfast"},
				},
			},
		},
		{
			ID:               "pkg-007",
			Slug:             "east-coast-surf-and-dive",
			Title:            "East Coast Surf & Dive",
			ShortDescription: "Arugam Bay's points and Trincomalee's reefs in the dry-season window.",
			Description:      "Ten days chasing the east coast season: surf mornings at Arugam Bay, a crossing through Gal Oya's elephant country, and reef diving off Nilaveli.",
			DurationDays:     10,
			DurationNights:   9,
			PriceFromUSD:     1390,
			Regions:          []string{"East Coast", "Dry Zone"},
			Interests:        []string{"surf", "diving", "beach", "wildlife"},
			Rating:           4.6,
			ReviewCount:      45,
			HeroImage:        "https://images.unsplash.com/photo-1507525428034-b723cf961d3e?w=1600",
			Images: []string{
				"https://images.unsplash.com/photo-1507525428034-b723cf961d3e?w=600",
				"https://images.unsplash.com/photo-1549366021-9f761d450615?w=600",
			},
			Inclusions:  []string{"Board hire and two surf coachings", "Two-tank dive at Pigeon Island", "All transfers", "Breakfast daily"},
			Exclusions:  []string{"Dive certification courses", "Lunch and dinner"},
			Highlights:  []string{"Main Point at dawn", "Boat safari on Gal Oya reservoir", "Diving the Nilaveli coral gardens"},
			TravelStyle: models.StyleMid,
			Featured:    false,
			ItineraryDays: []models.ItineraryDay{
				{
					Day:           1,
					Title:         "Colombo to Arugam Bay",
					Description:   "The long cross-island drive, arriving for a sunset first look at the point.",
					Activities:    []string{"cross-island transfer", "sunset at Main Point"},
					Meals:         []string{"breakfast"},
					Accommodation: "The Spice Trail, Arugam Bay",
				},
				{
					Day:           2,
					Title:         "Arugam Bay Surf Morning",
					Description:   "Dawn session with a local coach, lazy afternoon in a hammock.",
					Activities:    []string{"dawn surf coaching", "video review over lunch", "beach afternoon"},
					Meals:         []string{"breakfast"},
					Accommodation: "The Spice Trail, Arugam Bay",
				},
				{
					Day:           3,
					Title:         "Whiskey Point & Pottuvil Lagoon",
					Description:   "A mellower point for the morning and a paddle among the mangroves at dusk.",
					Activities:    []string{"surf Whiskey Point", "lagoon canoe safari at dusk"},
					Meals:         []string{"breakfast"},
					Accommodation: "The Spice Trail, Arugam Bay",
				},
				{
					Day:         4,
					Title:       "Kumana Birding Detour",
					Description: "A half-day in the quieter cousin of Yala, all painted storks and empty tracks.",
					Activities:  []string{"morning drive in Kumana", "afternoon surf session"},
					Meals:       []string{"breakfast", "lunch"},
				},
				{
					Day:           5,
					Title:         "Gal Oya Boat Safari",
					Description:   "Inland to the reservoir where elephants swim between islands.",
					Activities:    []string{"transfer to Gal Oya", "boat safari at sunset"},
					Meals:         []string{"breakfast", "dinner"},
					Accommodation: "Gal Oya Lodge",
				},
				{
					Day:           6,
					Title:         "Gal Oya with the Vedda",
					Description:   "Forest walk with the indigenous community, then north toward Trincomalee.",
					Activities:    []string{"forest walk with Vedda guides", "drive north to Trincomalee"},
					Meals:         []string{"breakfast"},
					Accommodation: "Trinco Blu by Cinnamon",
				},
				{
					Day:           7,
					Title:         "Nilaveli Dive Day",
					Description:   "Two tanks off Pigeon Island's coral gardens.",
					Activities:    []string{"two-tank morning dive", "beach rest"},
					Meals:         []string{"breakfast"},
					Accommodation: "Trinco Blu by Cinnamon",
				},
				{
					Day:           8,
					Title:         "Trincomalee Temple & Hot Wells",
					Description:   "Koneswaram on its cliff and the seven bathing wells of Kanniya.",
					Activities:    []string{"Koneswaram temple", "Kanniya hot wells", "fish market walk"},
					Meals:         []string{"breakfast"},
					Accommodation: "Trinco Blu by Cinnamon",
				},
				{
					Day:           9,
					Title:         "Beach Day at Uppuveli",
					Description:   "Nothing scheduled. That is the point.",
					Activities:    []string{"free beach day"},
					Meals:         []string{"breakfast"},
					Accommodation: "Trinco Blu by Cinnamon",
				},
				{
					Day:         10,
					Title:       "Return & Airport Departure",
					Description: "Back across the island in time for evening flights.",
					Activities:  []string{"transfer to the airport"},
					Meals:       []string{"breakfast"},
				},
			},
		},
		{
			ID:               "pkg-008",
			Slug:             "family-adventure-week",
			Title:            "Family Adventure Week",
			ShortDescription: "Six days of trains, elephants and beaches paced for kids.",
			Description:      "A family-tested circuit with short drives, early dinners and plenty of animals: the Pinnawala elephants, the Kandy train, a gentle Yala safari and two beach days to finish.",
			DurationDays:     6,
			DurationNights:   5,
			PriceFromUSD:     980,
			Regions:          []string{"Hill Country", "South Coast"},
			Interests:        []string{"family", "wildlife", "beach"},
			Rating:           4.3,
			ReviewCount:      39,
			HeroImage:        "https://images.unsplash.com/photo-1564760055775-d63b17a55c44?w=1600",
			Images: []string{
				"https://images.unsplash.com/photo-1564760055775-d63b17a55c44?w=600",
				"https://images.unsplash.com/photo-1507525428034-b723cf961d3e?w=600",
			},
			Inclusions:  []string{"Family rooms throughout", "Child seats in vehicle", "All entrance fees", "Daily breakfast"},
			Exclusions:  []string{"International flights", "Lunch and dinner"},
			Highlights:  []string{"Pinnawala river bathing hour", "First-class seats on the Kandy train", "Junior ranger safari in Yala"},
			TravelStyle: models.StyleMid,
			Featured:    false,
			ItineraryDays: []models.ItineraryDay{
				{
					Day:           1,
					Title:         "Colombo & Pinnawala Elephants",
					Description:   "Easy start with the river bathing hour at the elephant orphanage.",
					Activities:    []string{"Pinnawala river bathing", "drive to Kandy"},
					Meals:         []string{"breakfast"},
					Accommodation: "Oak Ray Regency, Kandy",
				},
				{
					Day:           2,
					Title:         "Kandy Temple & Lake Walk",
					Description:   "The Temple of the Tooth at a child's pace, paddle boats after.",
					Activities:    []string{"Temple of the Tooth visit", "paddle boats on the lake", "cultural dance show"},
					Meals:         []string{"breakfast"},
					Accommodation: "Oak Ray Regency, Kandy",
				},
				{
					Day:         3,
					Title:       "Scenic Train & Tea Stop",
					Description: "A shortened hill train hop with window seats booked well ahead.",
					Activities:  []string{"train ride through tea country", "tea factory stop with ice cream"},
					Meals:       []string{"breakfast"},
				},
				{
					Day:           4,
					Title:         "Yala Junior Safari",
					Description:   "A single afternoon game drive with a ranger who is good with kids.",
					Activities:    []string{"afternoon family safari", "tusker checklist game"},
					Meals:         []string{"breakfast", "dinner"},
					Accommodation: "Cinnamon Wild Yala",
				},
				{
					Day:           5,
					Title:         "Beach Day at Unawatuna",
					Description:   "Warm shallow water, zero currents, many king coconuts.",
					Activities:    []string{"beach swimming day", "glass-bottom boat ride"},
					Meals:         []string{"breakfast"},
					Accommodation: "Calamander Unawatuna Beach",
				},
				{
					Day:         6,
					Title:       "Galle Fort Walk & Departure",
					Description: "Lighthouse, ramparts and one last scoop before the airport run.",
					Activities:  []string{"fort walk with the kids", "airport transfer"},
					Meals:       []string{"breakfast"},
				},
			},
		},
	}
}

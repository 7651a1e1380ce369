package database

import (
	"lstours/models"
)

func seedDestinations() []models.Destination {
	return []models.Destination{
		{
			ID:               "dest-001",
			Slug:             "sigiriya",
			Name:             "Sigiriya",
			ShortDescription: "The fifth-century rock fortress rising out of the dry-zone plain.",
			Description:      "King Kasyapa's palace in the sky, ringed by water gardens and mirror walls. Climb early, before the heat and the crowds, and finish with the view from neighbouring Pidurangala.",
			HeroImage:        "https://images.unsplash.com/photo-1586613835342-7d5e75e1d77b?w=1600",
			Images:           []string{"https://images.unsplash.com/photo-1586613835342-7d5e75e1d77b?w=600"},
			BestTimeToVisit:  "January to April",
			Tags:             []string{"unesco", "history", "hiking"},
			Highlights:       []string{"Lion staircase", "Frescoes gallery", "Water gardens"},
			Region:           "Cultural Triangle",
		},
		{
			ID:               "dest-002",
			Slug:             "kandy",
			Name:             "Kandy",
			ShortDescription: "The hill capital and home of the Temple of the Sacred Tooth Relic.",
			Description:      "The last royal capital of the island sits in a bowl of hills around its lake. The evening temple ceremony, drummers echoing under the golden canopy, remains the island's most charged ritual.",
			HeroImage:        "https://images.unsplash.com/photo-1567157577867-05ccb1388e66?w=1600",
			Images:           []string{"https://images.unsplash.com/photo-1567157577867-05ccb1388e66?w=600"},
			BestTimeToVisit:  "December to April",
			Tags:             []string{"culture", "temple", "unesco"},
			Highlights:       []string{"Temple of the Tooth", "Kandy Lake", "Peradeniya gardens"},
			Region:           "Hill Country",
		},
		{
			ID:               "dest-003",
			Slug:             "ella",
			Name:             "Ella",
			ShortDescription: "A laid-back mountain village strung between tea terraces and waterfalls.",
			Description:      "Ella earns its reputation: the Nine Arch Bridge, Little Adam's Peak and the gap view from almost every cafe terrace. Arrive by train from Nanu Oya for the full effect.",
			HeroImage:        "https://images.unsplash.com/photo-1566766189268-73acf97f9de7?w=1600",
			Images:           []string{"https://images.unsplash.com/photo-1566766189268-73acf97f9de7?w=600"},
			BestTimeToVisit:  "January to May",
			Tags:             []string{"hiking", "tea", "scenery"},
			Highlights:       []string{"Nine Arch Bridge", "Little Adam's Peak", "Ravana Falls"},
			Region:           "Hill Country",
		},
		{
			ID:               "dest-004",
			Slug:             "galle",
			Name:             "Galle",
			ShortDescription: "A living Dutch colonial fort on the south-western tip of the island.",
			Description:      "Four centuries of ramparts wrap a grid of cafes, boutiques and lighthouse lanes. Golden hour on the walls, with cricket on the green below, is the classic Galle moment.",
			HeroImage:        "https://images.unsplash.com/photo-1552733407-5d5c46c3bb3b?w=1600",
			Images:           []string{"https://images.unsplash.com/photo-1552733407-5d5c46c3bb3b?w=600"},
			BestTimeToVisit:  "November to April",
			Tags:             []string{"unesco", "colonial", "coast"},
			Highlights:       []string{"Rampart walk", "Lighthouse point", "Maritime museum"},
			Region:           "South Coast",
		},
		{
			ID:               "dest-005",
			Slug:             "yala",
			Name:             "Yala National Park",
			ShortDescription: "The island's premier leopard territory, scrub jungle meeting the sea.",
			Description:      "Block one of Yala holds one of the highest leopard densities anywhere. Dawn and dusk drives give the best odds; the lagoons add elephants, sloth bears and painted storks.",
			HeroImage:        "https://images.unsplash.com/photo-1549366021-9f761d450615?w=1600",
			Images:           []string{"https://images.unsplash.com/photo-1549366021-9f761d450615?w=600"},
			BestTimeToVisit:  "February to July",
			Tags:             []string{"wildlife", "safari", "photography"},
			Highlights:       []string{"Leopard drives", "Patanangala beach rock", "Lagoon birdlife"},
			Region:           "Dry Zone",
		},
		{
			ID:               "dest-006",
			Slug:             "nuwara-eliya",
			Name:             "Nuwara Eliya",
			ShortDescription: "The misty heart of Ceylon tea country, still faintly Edwardian.",
			Description:      "At almost two thousand metres the air is cool, the lawns are clipped and the tea is picked daily on every slope in sight. Base here for Horton Plains and the factory tours.",
			HeroImage:        "https://images.unsplash.com/photo-1588598198516-5f89f0e300c6?w=1600",
			Images:           []string{"https://images.unsplash.com/photo-1588598198516-5f89f0e300c6?w=600"},
			BestTimeToVisit:  "February to May",
			Tags:             []string{"tea", "colonial", "hiking"},
			Highlights:       []string{"Tea factory tours", "Horton Plains", "Gregory Lake"},
			Region:           "Hill Country",
		},
		{
			ID:               "dest-007",
			Slug:             "mirissa",
			Name:             "Mirissa",
			ShortDescription: "Whale watching harbour and palm-fringed crescent beach.",
			Description:      "Blue whales cruise the shelf a few miles offshore between November and April. Back on land, Coconut Tree Hill and the evening seafood grills keep the days full enough.",
			HeroImage:        "https://images.unsplash.com/photo-1507525428034-b723cf961d3e?w=1600",
			Images:           []string{"https://images.unsplash.com/photo-1507525428034-b723cf961d3e?w=600"},
			BestTimeToVisit:  "November to April",
			Tags:             []string{"beach", "whales", "surf"},
			Highlights:       []string{"Blue whale boats", "Coconut Tree Hill", "Parrot Rock"},
			Region:           "South Coast",
		},
		{
			ID:               "dest-008",
			Slug:             "anuradhapura",
			Name:             "Anuradhapura",
			ShortDescription: "The sacred first capital, inhabited and worshipped for over two millennia.",
			Description:      "A plain of colossal dagobas, monastic ruins and the oldest historically documented tree on earth. Hire a bicycle and give it a full day; the evening puja is the reward.",
			HeroImage:        "https://images.unsplash.com/photo-1586613835342-7d5e75e1d77b?w=1600",
			Images:           []string{"https://images.unsplash.com/photo-1586613835342-7d5e75e1d77b?w=600"},
			BestTimeToVisit:  "May to September",
			Tags:             []string{"unesco", "history", "pilgrimage"},
			Highlights:       []string{"Ruwanwelisaya", "Sri Maha Bodhi", "Moonstone carvings"},
			Region:           "Cultural Triangle",
		},
	}
}

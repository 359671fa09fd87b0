package navigation

import (
	"fmt"
	"strings"
)

// destinationNodes maps normalized NLU keys to node names in the graph.
var destinationNodes = map[string]string{
	"accueil":        "Accueil",
	"salle_a":        "Salle A",
	"salle_b":        "Salle B",
	"salle_c":        "Salle C",
	"salle_d":        "Salle D",
	"natation":       "Salle Natation",
	"salle_natation": "Salle Natation",
	"vestiaire":      "Vestiaire",
	"vestiaires":     "Vestiaire",
	"terrain":        "Terrain",
	"secretariat":    "Secrétariat",
	"secrétariat":    "Secrétariat",
	"entree":         "Entrée",
	"entrée":         "Entrée",
}

// IndoorMap is the semantic graph of the building. The layout is static:
// every room hangs off the central corridor, which connects back to the
// reception desk and the entrance.
type IndoorMap struct {
	adjacency map[string][]string
	start     string
}

// NewIndoorMap builds the building graph with the reception desk as the
// starting point of every route.
func NewIndoorMap() *IndoorMap {
	m := &IndoorMap{
		adjacency: make(map[string][]string),
		start:     "Accueil",
	}
	edges := [][2]string{
		{"Entrée", "Accueil"},
		{"Accueil", "Couloir"},
		{"Couloir", "Salle A"},
		{"Couloir", "Salle B"},
		{"Couloir", "Salle C"},
		{"Couloir", "Salle D"},
		{"Couloir", "Salle Natation"},
		{"Couloir", "Escalier 1"},
		{"Couloir", "Escalier 2"},
	}
	for _, e := range edges {
		m.adjacency[e[0]] = append(m.adjacency[e[0]], e[1])
		m.adjacency[e[1]] = append(m.adjacency[e[1]], e[0])
	}
	return m
}

// Route implements Service.
func (m *IndoorMap) Route(destinationKey string) (*Route, bool) {
	node, ok := destinationNodes[destinationKey]
	if !ok {
		return nil, false
	}
	path := m.shortestPath(m.start, node)
	if path == nil {
		return nil, false
	}
	return &Route{
		Destination:    node,
		DestinationKey: destinationKey,
		Path:           path,
		Instructions:   instructions(path),
	}, true
}

// shortestPath runs a breadth-first search; all edges weigh the same.
func (m *IndoorMap) shortestPath(start, end string) []string {
	if start == end {
		return []string{start}
	}
	parent := map[string]string{start: ""}
	queue := []string{start}
	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]
		for _, next := range m.adjacency[current] {
			if _, seen := parent[next]; seen {
				continue
			}
			parent[next] = current
			if next == end {
				var path []string
				for n := end; n != ""; n = parent[n] {
					path = append([]string{n}, path...)
				}
				return path
			}
			queue = append(queue, next)
		}
	}
	return nil
}

// instructions turns a node path into spoken French directions.
func instructions(path []string) []string {
	var out []string
	for i := 0; i < len(path)-1; i++ {
		current, next := path[i], path[i+1]
		switch {
		case strings.Contains(next, "Escalier"):
			out = append(out, "Prenez les escaliers.")
		case strings.Contains(current, "Escalier"):
			out = append(out, "Montez au premier étage.")
		case next == "Couloir":
			out = append(out, "Avancez dans le couloir.")
		case next == "Accueil":
			out = append(out, "Dirigez-vous vers l'accueil.")
		case next == "Entrée":
			out = append(out, "Retournez vers l'entrée.")
		case strings.Contains(next, "Salle"):
			out = append(out, fmt.Sprintf("Continuez tout droit, %s se trouve devant vous.", next))
		default:
			out = append(out, fmt.Sprintf("Allez de %s vers %s.", current, next))
		}
	}
	return out
}

package trace

type Tier string

const (
	TierStandard   Tier = "standard"
	TierPLO        Tier = "plo"
	TierModule     Tier = "module"
	TierMIMLO      Tier = "mimlo"
	TierAssessment Tier = "assessment"
)

// FlowNode is one deduplicated label at a tier of the flow diagram.
type FlowNode struct {
	Tier  Tier
	Label string
}

// FlowEdge links two adjacent-tier nodes; Weight counts how many rows
// produced the same (source, target) pair.
type FlowEdge struct {
	Source FlowNode
	Target FlowNode
	Weight int
}

// Flow is the Sankey-style aggregation of a row list. Nodes and edges
// appear in first-seen order.
type Flow struct {
	Nodes []FlowNode
	Edges []FlowEdge
}

type nodeKey struct {
	tier  Tier
	label string
}

// BuildFlow aggregates trace rows into the flow graph. Node labels are
// deduplicated within a tier; repeated edges accumulate weight instead
// of creating parallel edges. Gap rows contribute only the tiers they
// reached.
func BuildFlow(rows []Row) Flow {
	var flow Flow
	nodeSeen := make(map[nodeKey]bool)
	edgeIdx := make(map[[2]nodeKey]int)

	addNode := func(n FlowNode) {
		k := nodeKey{n.Tier, n.Label}
		if !nodeSeen[k] {
			nodeSeen[k] = true
			flow.Nodes = append(flow.Nodes, n)
		}
	}
	addEdge := func(src, dst FlowNode) {
		k := [2]nodeKey{{src.Tier, src.Label}, {dst.Tier, dst.Label}}
		if i, ok := edgeIdx[k]; ok {
			flow.Edges[i].Weight++
			return
		}
		edgeIdx[k] = len(flow.Edges)
		flow.Edges = append(flow.Edges, FlowEdge{Source: src, Target: dst, Weight: 1})
	}

	for _, r := range rows {
		chain := rowChain(r)
		for i, n := range chain {
			addNode(n)
			if i > 0 {
				addEdge(chain[i-1], n)
			}
		}
	}
	return flow
}

// rowChain returns the tier nodes a row actually reached, in order.
func rowChain(r Row) []FlowNode {
	var chain []FlowNode
	chain = append(chain, FlowNode{TierStandard, r.StandardLabel()})
	if r.PLOText == "" && r.PLOID == "" {
		return chain
	}
	chain = append(chain, FlowNode{TierPLO, labelOr(r.PLOText, r.PLOID)})
	if r.ModuleLabel == "" {
		return chain
	}
	chain = append(chain, FlowNode{TierModule, r.ModuleLabel})
	if r.MIMLOText == "" && r.MIMLOID == "" {
		return chain
	}
	chain = append(chain, FlowNode{TierMIMLO, labelOr(r.MIMLOText, r.MIMLOID)})
	if r.AssessmentTitle == "" && r.AssessmentID == "" {
		return chain
	}
	chain = append(chain, FlowNode{TierAssessment, labelOr(r.AssessmentTitle, r.AssessmentID)})
	return chain
}

func labelOr(primary, fallback string) string {
	if primary != "" {
		return primary
	}
	return fallback
}

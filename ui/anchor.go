package ui

// Anchor is a point of an actor, expressed as a fraction of its size
type Anchor struct {
	FX, FY float64
}

var (
	BottomLeft   = Anchor{0, 0}
	BottomCenter = Anchor{0.5, 0}
	BottomRight  = Anchor{1, 0}
	CenterLeft   = Anchor{0, 0.5}
	Center       = Anchor{0.5, 0.5}
	CenterRight  = Anchor{1, 0.5}
	TopLeft      = Anchor{0, 1}
	TopCenter    = Anchor{0.5, 1}
	TopRight     = Anchor{1, 1}
)

type positionRule struct {
	target          Actor
	targetAnchor    Anchor
	reference       Actor
	referenceAnchor Anchor
	dx, dy          float64
}

// AnchorGroup positions its children relative to itself or to each other.
// Rules are applied in the order they were added, so a rule may refer to an
// actor placed by an earlier one.
type AnchorGroup struct {
	Group
	rules []positionRule
}

func NewAnchorGroup() *AnchorGroup {
	return &AnchorGroup{}
}

// AddPositionRule adds target to the group if needed and places its
// targetAnchor on the referenceAnchor of reference. reference is either the
// group itself or one of its children.
func (g *AnchorGroup) AddPositionRule(target Actor, targetAnchor Anchor, reference Actor, referenceAnchor Anchor) {
	g.AddPositionRuleWithOffset(target, targetAnchor, reference, referenceAnchor, 0, 0)
}

// AddPositionRuleWithOffset is AddPositionRule with the target shifted by dx, dy
func (g *AnchorGroup) AddPositionRuleWithOffset(target Actor, targetAnchor Anchor, reference Actor, referenceAnchor Anchor, dx, dy float64) {
	if target.widget().parent != &g.Group {
		g.AddActor(target)
	}
	g.rules = append(g.rules, positionRule{
		target:          target,
		targetAnchor:    targetAnchor,
		reference:       reference,
		referenceAnchor: referenceAnchor,
		dx:              dx,
		dy:              dy,
	})
}

// Layout sizes the group then applies the position rules
func (g *AnchorGroup) Layout() {
	if g.fillParent && g.parent != nil {
		g.SetPosition(0, 0)
		g.SetSize(g.parent.Width(), g.parent.Height())
	}
	for _, rule := range g.rules {
		ref := rule.reference.widget()
		var rx, ry float64
		if ref != &g.Widget {
			rx, ry = ref.x, ref.y
		}
		rx += ref.width * rule.referenceAnchor.FX
		ry += ref.height * rule.referenceAnchor.FY

		t := rule.target.widget()
		t.SetPosition(
			rx-t.width*rule.targetAnchor.FX+rule.dx,
			ry-t.height*rule.targetAnchor.FY+rule.dy,
		)
	}
	layoutChildren(g.children)
}

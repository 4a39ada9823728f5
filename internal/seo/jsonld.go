package seo

import (
	"encoding/json"
	"time"

	"truescholar.in/portal-web/internal/nav"
	"truescholar.in/portal-web/internal/page"
	"truescholar.in/portal-web/internal/slug"
)

// schemaContext is the shared @context of every emitted graph.
const schemaContext = "https://schema.org"

// Node is one schema.org node object. Every node carries a @type.
type Node = map[string]any

// Graph is a JSON-LD @graph bundle under a single shared context.
type Graph struct {
	Context string `json:"@context"`
	Nodes   []Node `json:"@graph"`
}

// NewGraph wraps nodes in a graph with the schema.org context.
func NewGraph(nodes ...Node) Graph {
	return Graph{Context: schemaContext, Nodes: nodes}
}

// JSON marshals v to a compact JSON string. It returns an empty string on error.
func JSON(v any) string {
	b, err := json.Marshal(v)
	if err != nil {
		return ""
	}
	return string(b)
}

// MergeSchemas flattens the @graph arrays of its arguments into one graph
// under a single context, preserving argument order. Arguments may be Graph
// values or bare node objects; a bare node's own @context, if any, is
// dropped in favor of the shared one.
func MergeSchemas(parts ...any) Graph {
	out := Graph{Context: schemaContext}
	for _, p := range parts {
		switch g := p.(type) {
		case Graph:
			out.Nodes = append(out.Nodes, g.Nodes...)
		case *Graph:
			if g != nil {
				out.Nodes = append(out.Nodes, g.Nodes...)
			}
		case []Node:
			out.Nodes = append(out.Nodes, g...)
		case Node:
			out.Nodes = append(out.Nodes, stripContext(g))
		}
	}
	return out
}

// AddToSchema appends nodes to a copy of graph. Sugar over MergeSchemas.
func AddToSchema(g Graph, nodes ...Node) Graph {
	return MergeSchemas(g, nodes)
}

func stripContext(n Node) Node {
	if _, ok := n["@context"]; !ok {
		return n
	}
	out := make(Node, len(n))
	for k, v := range n {
		if k == "@context" {
			continue
		}
		out[k] = v
	}
	return out
}

// GlobalSchema returns the site-wide Organization and WebSite nodes. The
// WebSite node advertises the internal search endpoint as a SearchAction.
func (s Site) GlobalSchema() Graph {
	org := Node{
		"@type": "Organization",
		"name":  s.Name,
		"url":   s.BaseURL,
		"logo":  s.AbsoluteURL("/images/logo.png"),
	}
	site := Node{
		"@type": "WebSite",
		"name":  s.Name,
		"url":   s.BaseURL,
		"potentialAction": Node{
			"@type":       "SearchAction",
			"target":      s.AbsoluteURL("/search?q={search_term_string}"),
			"query-input": "required name=search_term_string",
		},
	}
	return NewGraph(org, site)
}

// PageSchema assembles the structured-data graph for a page variant. Absent
// optional data (no FAQs, no dates, no author) omits the corresponding node
// rather than emitting an empty one; no branch fails.
func (s Site) PageSchema(v page.Variant) Graph {
	ent, err := page.Normalize(v)
	if err != nil {
		return NewGraph()
	}

	switch v.Kind {
	case page.KindCollege, page.KindCollegeTab:
		college := v.College
		if v.Kind == page.KindCollegeTab {
			college = &v.CollegeTab.College
		}
		if college == nil || ent.Name == "" {
			return NewGraph()
		}
		slugID := slug.AppendID(ent.Slug, ent.ID)
		nodes := []Node{s.collegeNode(*college, slugID)}
		if faq := faqNode(college.FAQs); faq != nil {
			nodes = append(nodes, faq)
		}
		nodes = append(nodes, eventNodes(ent.Name, college.Dates)...)
		nodes = append(nodes, s.breadcrumbNode(nav.CollegeTrail(ent.Name, slugID, ent.Tab)))
		return NewGraph(nodes...)

	case page.KindExam, page.KindExamSilo:
		exam := v.Exam
		if v.Kind == page.KindExamSilo {
			exam = &v.ExamSilo.Exam
		}
		if exam == nil || ent.Name == "" {
			return NewGraph()
		}
		slugID := slug.AppendID(ent.Slug, ent.ID)
		var nodes []Node
		if faq := faqNode(exam.FAQs); faq != nil {
			nodes = append(nodes, faq)
		}
		nodes = append(nodes, eventNodes(ent.Name, exam.Dates)...)
		nodes = append(nodes, s.breadcrumbNode(nav.ExamTrail(ent.Name, slugID, ent.Tab)))
		return NewGraph(nodes...)

	case page.KindArticle:
		if v.Article == nil || ent.Name == "" {
			return NewGraph()
		}
		slugID := slug.AppendID(ent.Slug, ent.ID)
		return NewGraph(
			s.blogPostingNode(*v.Article, slugID),
			s.breadcrumbNode(nav.ArticleTrail(ent.Name, slugID)),
		)

	case page.KindFilter:
		// A filtered listing is not itself a schema.org entity.
		if v.Filter == nil {
			return NewGraph()
		}
		f := *v.Filter
		return NewGraph(s.breadcrumbNode(nav.FilterTrail(f.EntityType, facetArg(f.Stream), facetArg(f.City))))

	case page.KindStatic:
		if v.Static == nil {
			return NewGraph()
		}
		p := *v.Static
		node := Node{
			"@type": "WebPage",
			"name":  ent.Name,
			"url":   s.AbsoluteURL("/" + p.Slug),
		}
		if ent.MetaDesc != "" {
			node["description"] = ent.MetaDesc
		}
		return NewGraph(node)

	default:
		return NewGraph()
	}
}

func (s Site) collegeNode(c page.College, slugID string) Node {
	node := Node{
		"@type": "CollegeOrUniversity",
		"name":  c.Name,
		"url":   s.AbsoluteURL("/colleges/" + slugID),
	}
	if c.LogoURL != "" {
		node["logo"] = s.AbsoluteURL(c.LogoURL)
	}
	if c.City != "" || c.State != "" {
		addr := Node{"@type": "PostalAddress", "addressCountry": "IN"}
		if c.City != "" {
			addr["addressLocality"] = c.City
		}
		if c.State != "" {
			addr["addressRegion"] = c.State
		}
		node["address"] = addr
	}
	if c.FoundedYear > 0 {
		node["foundingDate"] = c.FoundedYear
	}
	return node
}

func (s Site) blogPostingNode(a page.Article, slugID string) Node {
	node := Node{
		"@type":    "BlogPosting",
		"headline": a.Title,
		"url":      s.AbsoluteURL("/articles/" + slugID),
		"publisher": Node{
			"@type": "Organization",
			"name":  s.Name,
			"logo":  s.AbsoluteURL("/images/logo.png"),
		},
	}
	if a.HeroImageURL != "" {
		node["image"] = s.AbsoluteURL(a.HeroImageURL)
	}
	if a.Author.Name != "" {
		author := Node{"@type": "Person", "name": a.Author.Name}
		if a.Author.Slug != "" {
			author["url"] = s.AbsoluteURL("/authors/" + a.Author.Slug)
		}
		node["author"] = author
	}
	if !a.PublishedAt.IsZero() {
		node["datePublished"] = a.PublishedAt.Format(time.RFC3339)
	}
	if !a.UpdatedAt.IsZero() {
		node["dateModified"] = a.UpdatedAt.Format(time.RFC3339)
	}
	return node
}

func faqNode(faqs []page.FAQ) Node {
	if len(faqs) == 0 {
		return nil
	}
	items := make([]Node, 0, len(faqs))
	for _, f := range faqs {
		if f.Question == "" || f.Answer == "" {
			continue
		}
		items = append(items, Node{
			"@type":          "Question",
			"name":           f.Question,
			"acceptedAnswer": Node{"@type": "Answer", "text": f.Answer},
		})
	}
	if len(items) == 0 {
		return nil
	}
	return Node{"@type": "FAQPage", "mainEntity": items}
}

func eventNodes(entityName string, dates []page.DateRange) []Node {
	var nodes []Node
	for _, d := range dates {
		if d.Name == "" || d.Start.IsZero() {
			continue
		}
		node := Node{
			"@type":     "Event",
			"name":      entityName + " " + d.Name,
			"startDate": d.Start.Format("2006-01-02"),
		}
		if !d.End.IsZero() {
			node["endDate"] = d.End.Format("2006-01-02")
		}
		nodes = append(nodes, node)
	}
	return nodes
}

// breadcrumbNode serializes a trail into a BreadcrumbList with 1-based
// positions and absolute item URLs.
func (s Site) breadcrumbNode(crumbs []nav.Crumb) Node {
	crumbs = nav.Absolutize(crumbs, s.BaseURL)
	items := make([]Node, 0, len(crumbs))
	for i, c := range crumbs {
		items = append(items, Node{
			"@type":    "ListItem",
			"position": i + 1,
			"name":     c.Name,
			"item":     c.Href,
		})
	}
	return Node{"@type": "BreadcrumbList", "itemListElement": items}
}

func facetArg(f *page.Facet) *nav.Facet {
	if f == nil {
		return nil
	}
	return &nav.Facet{Name: f.Name, Slug: f.Slug}
}

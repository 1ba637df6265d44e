// Package drawer renders graphs and algorithm results as Graphviz DOT.
package drawer

import (
	"cmp"
	"fmt"
	"io"
	"os"
	"slices"
	"strconv"
	"strings"
	"text/template"

	"github.com/dominikbraun/graph"
	"github.com/pkg/errors"
	"gopkg.in/go-playground/colors.v1" //nolint

	"github.com/askiada/go-dsa/pkg/greedy"
)

const maxRGB = 240

// DOTDrawer renders a graph with overlays. The input graph is never modified.
type DOTDrawer[K cmp.Ordered, T any] struct {
	graph          graph.Graph[K, T]
	attributes     map[string]string
	vertexAttrs    map[K]map[string]string
	edgeAttributes map[[2]K]map[string]string
}

// NewDOTDrawer creates a new DOT drawer for g.
func NewDOTDrawer[K cmp.Ordered, T any](g graph.Graph[K, T]) *DOTDrawer[K, T] {
	return &DOTDrawer[K, T]{
		graph:          g,
		attributes:     make(map[string]string),
		vertexAttrs:    make(map[K]map[string]string),
		edgeAttributes: make(map[[2]K]map[string]string),
	}
}

// SetAttribute sets a graph level attribute such as rankdir.
func (d *DOTDrawer[K, T]) SetAttribute(key, value string) {
	d.attributes[key] = value
}

// SetVertexLabel adds an external label next to a vertex.
func (d *DOTDrawer[K, T]) SetVertexLabel(vertex K, label string) error {
	if _, err := d.graph.Vertex(vertex); err != nil {
		return errors.Wrapf(err, "unable to label vertex %v", vertex)
	}

	if d.vertexAttrs[vertex] == nil {
		d.vertexAttrs[vertex] = make(map[string]string)
	}

	d.vertexAttrs[vertex]["xlabel"] = label

	return nil
}

// Highlight draws the edge from source to target in red.
func (d *DOTDrawer[K, T]) Highlight(source, target K) error {
	return d.setEdgeAttributes(source, target, map[string]string{
		"color":    "red",
		"penwidth": "2",
	})
}

// AddFlow labels every edge of the flow network with flow/capacity and colours it
// from blue (no flow) to red (saturated).
func (d *DOTDrawer[K, T]) AddFlow(flow *greedy.Flow[K]) error {
	for _, e := range flow.Edges() {
		colour, err := flowColour(e)
		if err != nil {
			return err
		}

		err = d.setEdgeAttributes(e.Source, e.Target, map[string]string{
			"label":     fmt.Sprintf("%d/%d", e.Flow, e.Capacity),
			"fontcolor": "blue",
			"color":     colour,
		})
		if err != nil {
			return errors.Wrap(err, "unable to update edge")
		}
	}

	return nil
}

func flowColour[K cmp.Ordered](e greedy.FlowEdge[K]) (string, error) {
	if e.Saturated() {
		redColor, err := colors.RGB(255, 0, 0) //nolint
		if err != nil {
			return "", errors.Wrap(err, "unable to get colour")
		}

		return redColor.ToHEX().String(), nil
	}

	fraction := 0.0
	if e.Capacity > 0 {
		fraction = float64(e.Flow) / float64(e.Capacity)
	}

	red := maxRGB * fraction
	blue := -maxRGB*fraction + maxRGB

	colour, err := colors.RGB(uint8(red), 0, uint8(blue)) //nolint
	if err != nil {
		return "", errors.Wrap(err, "unable to get colour")
	}

	return colour.ToHEX().String(), nil
}

func (d *DOTDrawer[K, T]) setEdgeAttributes(source, target K, attrs map[string]string) error {
	if _, err := d.graph.Edge(source, target); err != nil {
		return errors.Wrapf(err, "unable to find edge from %v to %v", source, target)
	}

	key := d.edgeKey(source, target)
	if d.edgeAttributes[key] == nil {
		d.edgeAttributes[key] = make(map[string]string)
	}

	for k, v := range attrs {
		d.edgeAttributes[key][k] = v
	}

	return nil
}

func (d *DOTDrawer[K, T]) edgeKey(source, target K) [2]K {
	if !d.graph.Traits().IsDirected && target < source {
		return [2]K{target, source}
	}

	return [2]K{source, target}
}

// Draw writes the DOT description to wrt.
func (d *DOTDrawer[K, T]) Draw(wrt io.Writer) error {
	desc, err := d.generateDOT()
	if err != nil {
		return errors.Wrap(err, "failed to generate DOT description")
	}

	return renderDOT(wrt, desc)
}

// DrawFile creates path and writes the DOT description to it.
func (d *DOTDrawer[K, T]) DrawFile(path string) error {
	file, err := os.Create(path)
	if err != nil {
		return errors.Wrapf(err, "unable to create file %s", path)
	}
	defer file.Close()

	err = d.Draw(file)
	if err != nil {
		return errors.Wrapf(err, "unable to write dot file %s", path)
	}

	return nil
}

const dotTemplate = `strict {{.GraphType}} {
{{- range .Attributes}}
	{{.}};
{{- end}}
{{- range .Statements}}
	{{.}};
{{- end}}
}
`

type description struct {
	GraphType  string
	Attributes []string
	Statements []string
}

func (d *DOTDrawer[K, T]) generateDOT() (description, error) {
	desc := description{
		GraphType:  "graph",
		Attributes: formatAttributes(d.attributes),
	}

	edgeOperator := "--"
	if d.graph.Traits().IsDirected {
		desc.GraphType = "digraph"
		edgeOperator = "->"
	}

	adjacencyMap, err := d.graph.AdjacencyMap()
	if err != nil {
		return desc, errors.Wrap(err, "unable to get adjacency map")
	}

	vertices := make([]K, 0, len(adjacencyMap))
	for vertex := range adjacencyMap {
		vertices = append(vertices, vertex)
	}
	slices.Sort(vertices)

	for _, vertex := range vertices {
		_, properties, err := d.graph.VertexWithProperties(vertex)
		if err != nil {
			return desc, errors.Wrap(err, "unable to get vertex properties")
		}

		attrs := merge(properties.Attributes, d.vertexAttrs[vertex])
		desc.Statements = append(desc.Statements, statement(quote(fmt.Sprint(vertex)), attrs, ""))

		targets := make([]K, 0, len(adjacencyMap[vertex]))
		for target := range adjacencyMap[vertex] {
			if !d.graph.Traits().IsDirected && target < vertex {
				continue
			}
			targets = append(targets, target)
		}
		slices.Sort(targets)

		for _, target := range targets {
			edge := adjacencyMap[vertex][target]

			attrs := merge(edge.Properties.Attributes, d.edgeAttributes[d.edgeKey(vertex, target)])
			weight := ""
			if d.graph.Traits().IsWeighted {
				if _, ok := attrs["label"]; !ok {
					attrs["label"] = strconv.Itoa(edge.Properties.Weight)
				}
				weight = "weight=" + strconv.Itoa(edge.Properties.Weight)
			}

			head := quote(fmt.Sprint(vertex)) + " " + edgeOperator + " " + quote(fmt.Sprint(target))
			desc.Statements = append(desc.Statements, statement(head, attrs, weight))
		}
	}

	return desc, nil
}

func merge(base, overlay map[string]string) map[string]string {
	res := make(map[string]string, len(base)+len(overlay))
	for k, v := range base {
		res[k] = v
	}
	for k, v := range overlay {
		res[k] = v
	}

	return res
}

// formatAttributes renders attrs as key="value" pairs sorted by key.
func formatAttributes(attrs map[string]string) []string {
	keys := make([]string, 0, len(attrs))
	for k := range attrs {
		keys = append(keys, k)
	}
	slices.Sort(keys)

	pairs := make([]string, len(keys))
	for i, k := range keys {
		pairs[i] = k + "=" + quote(attrs[k])
	}

	return pairs
}

var dotEscaper = strings.NewReplacer(`\`, `\\`, `"`, `\"`)

// quote renders s as a DOT double-quoted string. Only backslashes and quotes are escaped.
func quote(s string) string {
	return `"` + dotEscaper.Replace(s) + `"`
}

func statement(head string, attrs map[string]string, weight string) string {
	list := formatAttributes(attrs)
	if weight != "" {
		list = append(list, weight)
	}

	if len(list) == 0 {
		return head
	}

	return head + " [" + strings.Join(list, ", ") + "]"
}

func renderDOT(wrt io.Writer, desc description) error {
	tpl, err := template.New("dotTemplate").Parse(dotTemplate)
	if err != nil {
		return errors.Wrap(err, "failed to parse template")
	}

	err = tpl.Execute(wrt, desc)
	if err != nil {
		return errors.Wrap(err, "unable to execute template")
	}

	return nil
}

var _ Drawer[int] = (*DOTDrawer[int, int])(nil)

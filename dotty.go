package rtree

import (
	"fmt"
	"io"
)

// Tree2Dot outputs the internal structure of an R-tree in Graphviz DOT format
// (for debugging purposes).
func Tree2Dot(t *RTree, w io.Writer) error {
	var err error
	write := func(s string) {
		if err == nil {
			_, err = io.WriteString(w, s)
		}
	}
	write("strict digraph {\n")
	write("\tnode [fontname=Arial,fontsize=12];\n")
	if !t.isVoid() {
		nodelist, edgelist := "", ""
		var walk func(id nodeID)
		walk = func(id nodeID) {
			n := t.nodes.node(id)
			label := "∅"
			if h := n.header(); h.hasMBR {
				label = h.mbr.String()
			}
			switch n := n.(type) {
			case *leafNode:
				for _, p := range n.points {
					label += "\\n" + p.String()
				}
				nodelist += fmt.Sprintf("\"%d\" [label=\"%s\" %s];\n", id, label, nodeDotStyles(true))
			case *innerNode:
				nodelist += fmt.Sprintf("\"%d\" [label=\"%s\" %s];\n", id, label, nodeDotStyles(false))
				for _, c := range n.children {
					edgelist += fmt.Sprintf("\"%d\" -> \"%d\";\n", id, c)
					walk(c)
				}
			}
		}
		walk(t.root)
		write(nodelist)
		write(edgelist)
	}
	write("}\n")
	if err != nil {
		T().Errorf("rtree DOT: %s", err.Error())
	}
	return err
}

func nodeDotStyles(isleaf bool) string {
	s := ",style=filled"
	if isleaf {
		s += ",shape=box"
	} else {
		s += ",color=black,fillcolor=\"#a3d7e4\""
		s += ",shape=ellipse"
	}
	return s
}

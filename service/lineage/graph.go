/*
 * @module service/lineage/graph
 * @description 血缘图校验与影响分析
 * @architecture 纯函数工具包
 * @documentReference DESIGN.md
 * @stateFlow 基线加载 -> Validate -> 缓存；查询 -> Upstream/Downstream
 * @rules 节点ID唯一；边的端点必须存在；图必须无环
 * @dependencies datamesh-service/service/models
 * @refs service/mockapi/mock_api.go
 */

package lineage

import (
	"errors"
	"fmt"

	"datamesh-service/service/models"
)

var (
	ErrDuplicateNode = errors.New("duplicate lineage node")
	ErrDanglingEdge  = errors.New("lineage edge references unknown node")
	ErrCycle         = errors.New("lineage graph contains a cycle")
)

// Validate 检查血缘图的引用完整性和无环性
func Validate(graph models.LineageGraph) error {
	ids := make(map[string]struct{}, len(graph.Nodes))
	for _, n := range graph.Nodes {
		if _, dup := ids[n.ID]; dup {
			return fmt.Errorf("%w: %s", ErrDuplicateNode, n.ID)
		}
		ids[n.ID] = struct{}{}
	}

	for _, l := range graph.Links {
		if _, ok := ids[l.Source]; !ok {
			return fmt.Errorf("%w: %s -> %s (source)", ErrDanglingEdge, l.Source, l.Target)
		}
		if _, ok := ids[l.Target]; !ok {
			return fmt.Errorf("%w: %s -> %s (target)", ErrDanglingEdge, l.Source, l.Target)
		}
	}

	// Kahn 拓扑排序，剩余未出队的节点即在环上
	indegree := make(map[string]int, len(ids))
	adj := adjacency(graph, false)
	for _, l := range graph.Links {
		indegree[l.Target]++
	}
	queue := make([]string, 0, len(ids))
	for _, n := range graph.Nodes {
		if indegree[n.ID] == 0 {
			queue = append(queue, n.ID)
		}
	}
	visited := 0
	for len(queue) > 0 {
		id := queue[0]
		queue = queue[1:]
		visited++
		for _, next := range adj[id] {
			indegree[next]--
			if indegree[next] == 0 {
				queue = append(queue, next)
			}
		}
	}
	if visited != len(graph.Nodes) {
		return ErrCycle
	}
	return nil
}

// Downstream 返回从id出发可达的所有节点，按广度优先顺序
func Downstream(graph models.LineageGraph, id string) []models.LineageNode {
	return reach(graph, id, false)
}

// Upstream 返回能到达id的所有节点，按广度优先顺序
func Upstream(graph models.LineageGraph, id string) []models.LineageNode {
	return reach(graph, id, true)
}

// Node 按ID查找节点
func Node(graph models.LineageGraph, id string) (models.LineageNode, bool) {
	for _, n := range graph.Nodes {
		if n.ID == id {
			return n, true
		}
	}
	return models.LineageNode{}, false
}

func adjacency(graph models.LineageGraph, reverse bool) map[string][]string {
	adj := make(map[string][]string, len(graph.Nodes))
	for _, l := range graph.Links {
		if reverse {
			adj[l.Target] = append(adj[l.Target], l.Source)
		} else {
			adj[l.Source] = append(adj[l.Source], l.Target)
		}
	}
	return adj
}

func reach(graph models.LineageGraph, id string, reverse bool) []models.LineageNode {
	adj := adjacency(graph, reverse)
	seen := map[string]bool{id: true}
	queue := []string{id}
	var order []string
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		for _, next := range adj[cur] {
			if seen[next] {
				continue
			}
			seen[next] = true
			order = append(order, next)
			queue = append(queue, next)
		}
	}

	result := make([]models.LineageNode, 0, len(order))
	for _, nid := range order {
		if n, ok := Node(graph, nid); ok {
			result = append(result, n)
		}
	}
	return result
}

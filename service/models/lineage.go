/*
 * @module service/models/lineage
 * @description 数据血缘图模型
 * @architecture 数据模型层
 * @documentReference DESIGN.md
 * @stateFlow 基线生成 -> 校验 -> 缓存
 * @rules 每条边的两个端点都必须是已存在的节点，图必须无环
 * @dependencies time
 * @refs service/lineage/graph.go
 */

package models

import "time"

// NodeType 血缘节点类型
type NodeType string

const (
	NodeTypeAPI       NodeType = "api"
	NodeTypeDatabase  NodeType = "database"
	NodeTypeFile      NodeType = "file"
	NodeTypeTransform NodeType = "transform"
	NodeTypeWarehouse NodeType = "warehouse"
	NodeTypeLake      NodeType = "lake"
	NodeTypeDashboard NodeType = "dashboard"
)

// NodeStatus 节点状态
type NodeStatus string

const (
	NodeActive   NodeStatus = "active"
	NodeInactive NodeStatus = "inactive"
)

// LinkType 血缘边类型
type LinkType string

const (
	LinkData LinkType = "data"
	LinkAPI  LinkType = "api"
)

// Position 节点在画布上的坐标
type Position struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// LineageNode 血缘节点
type LineageNode struct {
	ID       string     `json:"id"`
	Name     string     `json:"name"`
	Type     NodeType   `json:"type"`
	Position Position   `json:"position"`
	Status   NodeStatus `json:"status"`
}

// LineageLink 血缘边，Source -> Target
type LineageLink struct {
	Source string   `json:"source"`
	Target string   `json:"target"`
	Type   LinkType `json:"type"`
}

// LineageGraph 数据血缘图
type LineageGraph struct {
	Nodes []LineageNode `json:"nodes"`
	Links []LineageLink `json:"links"`
}

// Clone 返回血缘图的副本
func (g LineageGraph) Clone() LineageGraph {
	return LineageGraph{
		Nodes: append([]LineageNode(nil), g.Nodes...),
		Links: append([]LineageLink(nil), g.Links...),
	}
}

// NodeOperational 节点运行时指标，每次查询随机生成
type NodeOperational struct {
	LastUpdated time.Time  `json:"lastUpdated"`
	Throughput  int        `json:"throughput"`
	Latency     int        `json:"latency"`
	Status      NodeStatus `json:"status"`
}

// NodeDetails 节点详情
type NodeDetails struct {
	LineageNode
	Details NodeOperational `json:"details"`
}

// LineageImpact 节点影响分析结果
type LineageImpact struct {
	NodeID     string        `json:"nodeId"`
	Upstream   []LineageNode `json:"upstream"`
	Downstream []LineageNode `json:"downstream"`
}

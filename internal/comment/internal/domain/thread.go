// Copyright 2023 ecodeclub
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package domain

import "sort"

// ThreadNode 评论树节点。由扁平评论列表推导出来，不落库
type ThreadNode struct {
	Comment Comment
	// Depth 根评论为 0，每往下一层加 1。不限制最大层数
	Depth int
	// ParentMissing 父评论不在本次集合里（一般是被删了）。
	// 这类孤儿回复提升为根节点展示，前端渲染占位的"原评论已删除"，不能静默丢掉
	ParentMissing bool
	Children      []*ThreadNode
}

// BuildThread 把某个对象下的扁平评论列表还原成回复树。
//
// 先一趟建好 parentID -> 子评论列表 的索引，再自顶向下组装，
// 避免每层都对全量列表做一次过滤。同层按 Ctime 升序（先发的在前），
// Ctime 相同按 ID 升序，保证同一批数据不管传入顺序如何，结果都一样。
//
// 纯函数，没有副作用，每次重新渲染都可以放心重建。
func BuildThread(comments []Comment) []*ThreadNode {
	if len(comments) == 0 {
		return []*ThreadNode{}
	}

	byID := make(map[int64]Comment, len(comments))
	for _, c := range comments {
		byID[c.ID] = c
	}

	children := make(map[int64][]Comment, len(comments))
	roots := make([]Comment, 0, len(comments)/2)
	// 孤儿回复的ID集合
	orphans := make(map[int64]struct{})

	for _, c := range comments {
		switch {
		case c.ParentID == 0:
			roots = append(roots, c)
		case onCycle(c, byID):
			// 父链成环的评论降级为根评论，宁可展示得怪一点也不能死循环
			roots = append(roots, c)
		default:
			if _, ok := byID[c.ParentID]; !ok {
				// 父评论已被删除或者不属于本集合
				roots = append(roots, c)
				orphans[c.ID] = struct{}{}
				continue
			}
			children[c.ParentID] = append(children[c.ParentID], c)
		}
	}

	sortSiblings(roots)
	for _, group := range children {
		sortSiblings(group)
	}

	res := make([]*ThreadNode, 0, len(roots))
	for _, root := range roots {
		_, missing := orphans[root.ID]
		res = append(res, assemble(root, 0, missing, children))
	}
	return res
}

func assemble(c Comment, depth int, missing bool, children map[int64][]Comment) *ThreadNode {
	node := &ThreadNode{
		Comment:       c,
		Depth:         depth,
		ParentMissing: missing,
	}
	kids := children[c.ID]
	node.Children = make([]*ThreadNode, 0, len(kids))
	for _, kid := range kids {
		node.Children = append(node.Children, assemble(kid, depth+1, false, children))
	}
	return node
}

// onCycle 沿父链往上走，判断 c 是否处在一个环上。
// 环更上层的后代不算在环上，它们挂在被降级成根的环成员下面，依旧可达
func onCycle(c Comment, byID map[int64]Comment) bool {
	seen := make(map[int64]struct{})
	cur := c
	for {
		if cur.ParentID == 0 {
			return false
		}
		parent, ok := byID[cur.ParentID]
		if !ok {
			return false
		}
		if parent.ID == c.ID {
			return true
		}
		if _, dup := seen[parent.ID]; dup {
			return false
		}
		seen[parent.ID] = struct{}{}
		cur = parent
	}
}

func sortSiblings(group []Comment) {
	sort.Slice(group, func(i, j int) bool {
		if group[i].Ctime != group[j].Ctime {
			return group[i].Ctime < group[j].Ctime
		}
		return group[i].ID < group[j].ID
	})
}

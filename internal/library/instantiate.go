package library

import (
	"github.com/hpungsan/seer/internal/scene"
)

// Instantiate deep-copies a catalog fragment and grafts it into a scene
// at the given anchor. Every identifier, group identifier, containerId,
// boundElements reference and edge-endpoint binding is rewritten through
// fresh id maps, so no two instances ever share an identifier or group.
// Only the anchor is snapped to the grid; internal offsets between the
// fragment's elements are preserved exactly.
func Instantiate(b *scene.Builder, item *Item, x, y float64, labelOverride, seerLabel string) []scene.Element {
	copied := make([]scene.Element, 0, len(item.Elements))
	for _, el := range item.Elements {
		copied = append(copied, el.Clone())
	}

	idMap := map[string]string{}
	groupMap := map[string]string{}
	for _, el := range copied {
		if oldID := el.ID(); oldID != "" {
			if _, seen := idMap[oldID]; !seen {
				idMap[oldID] = b.NewID()
			}
		}
		for _, gid := range el.GroupIDs() {
			if _, seen := groupMap[gid]; !seen {
				groupMap[gid] = b.NewID()
			}
		}
	}

	minX, minY, _, _ := scene.GroupBBox(copied)
	dx := b.Snap(x) - minX
	dy := b.Snap(y) - minY

	for _, el := range copied {
		if newID, ok := idMap[el.ID()]; ok {
			el["id"] = newID
		}

		el["seed"] = b.SeedStamp()
		el["versionNonce"] = b.SeedStamp()
		el["updated"] = b.Now()
		el["isDeleted"] = false
		el["locked"] = false

		custom := el.CustomData()
		if _, ok := custom["seerSource"]; !ok {
			custom["seerSource"] = "library"
		}
		if seerLabel != "" {
			if _, ok := custom["seerLabel"]; !ok {
				custom["seerLabel"] = seerLabel
			}
		}

		gids := []string{}
		for _, gid := range el.GroupIDs() {
			if mapped, ok := groupMap[gid]; ok {
				gids = append(gids, mapped)
			}
		}
		el.SetGroupIDs(gids)

		if _, ok := el["x"]; ok {
			el.SetX(el.X() + dx)
		}
		if _, ok := el["y"]; ok {
			el.SetY(el.Y() + dy)
		}

		if cid := el.ContainerID(); cid != "" {
			if mapped, ok := idMap[cid]; ok {
				el["containerId"] = mapped
			}
		}

		if bound := el.BoundElements(); bound != nil {
			remapped := make([]map[string]any, 0, len(bound))
			for _, ref := range bound {
				if id, ok := ref["id"].(string); ok {
					if mapped, found := idMap[id]; found {
						ref["id"] = mapped
					}
				}
				remapped = append(remapped, ref)
			}
			el["boundElements"] = remapped
		}

		for _, key := range []string{"startBinding", "endBinding"} {
			binding, ok := el[key].(map[string]any)
			if !ok {
				continue
			}
			if eid, ok := binding["elementId"].(string); ok {
				if mapped, found := idMap[eid]; found {
					binding["elementId"] = mapped
				}
			}
		}
	}

	repairBindings(copied)

	if labelOverride != "" {
		RewriteLabel(b, copied, labelOverride)
	}

	return copied
}

// repairBindings re-derives each text element's group set from its
// container and ensures the container back-references the text, fixing
// any drift the identifier remap introduced.
func repairBindings(group []scene.Element) {
	byID := make(map[string]scene.Element, len(group))
	for _, el := range group {
		if id := el.ID(); id != "" {
			byID[id] = el
		}
	}
	for _, el := range group {
		if el.Type() != "text" {
			continue
		}
		cid := el.ContainerID()
		if cid == "" {
			continue
		}
		container, ok := byID[cid]
		if !ok {
			continue
		}
		gids := container.GroupIDs()
		if gids == nil {
			gids = []string{}
		}
		el.SetGroupIDs(gids)
		container.BindText(el.ID())
	}
}

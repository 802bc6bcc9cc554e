package styled

// Action is the closed set of callbacks that can be bound to a range:
// NoArgAction or SubstringAction.
type Action interface {
	isAction()
}

// NoArgAction 点击时不带参数调用。
type NoArgAction func()

// SubstringAction 点击时以绑定区间覆盖的子串为参数调用。
type SubstringAction func(string)

func (NoArgAction) isAction()     {}
func (SubstringAction) isAction() {}

// valid reports whether a carries a callable function.
func valid(a Action) bool {
	switch fn := a.(type) {
	case NoArgAction:
		return fn != nil
	case SubstringAction:
		return fn != nil
	default:
		return false
	}
}

// binding 是一次 AddAction 调用产生的绑定；id 用于判断“同一绑定”，因为函数值不可比较。
type binding struct {
	id     uint64
	action Action
}

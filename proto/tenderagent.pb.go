// Code generated by protoc-gen-go. DO NOT EDIT.
// versions:
// 	protoc-gen-go v1.36.11
// 	protoc        (unknown)
// source: tenderagent.proto

package agentv1

import (
	protoreflect "google.golang.org/protobuf/reflect/protoreflect"
	protoimpl "google.golang.org/protobuf/runtime/protoimpl"
	reflect "reflect"
	sync "sync"
	unsafe "unsafe"
)

const (
	// Verify that this generated code is sufficiently up-to-date.
	_ = protoimpl.EnforceVersion(20 - protoimpl.MinVersion)
	// Verify that runtime/protoimpl is sufficiently up-to-date.
	_ = protoimpl.EnforceVersion(protoimpl.MaxVersion - 20)
)

type RunRequest struct {
	state protoimpl.MessageState `protogen:"open.v1"`
	// Graph checkpoint thread. Reused across turns of the same chat and
	// required to resume an interrupted turn.
	ThreadId string `protobuf:"bytes,1,opt,name=thread_id,json=threadId,proto3" json:"thread_id,omitempty"`
	Query    string `protobuf:"bytes,2,opt,name=query,proto3" json:"query,omitempty"`
	// Virtual filesystem seed: absolute path -> file contents.
	ContextFiles map[string]string `protobuf:"bytes,3,rep,name=context_files,json=contextFiles,proto3" json:"context_files,omitempty" protobuf_key:"bytes,1,opt,name=key" protobuf_val:"bytes,2,opt,name=value"`
	ClusterId    string            `protobuf:"bytes,4,opt,name=cluster_id,json=clusterId,proto3" json:"cluster_id,omitempty"`
	// Set only when resuming an interrupted turn.
	Resume        *ResumeCommand `protobuf:"bytes,5,opt,name=resume,proto3" json:"resume,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *RunRequest) Reset() {
	*x = RunRequest{}
	mi := &file_tenderagent_proto_msgTypes[0]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *RunRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*RunRequest) ProtoMessage() {}

func (x *RunRequest) ProtoReflect() protoreflect.Message {
	mi := &file_tenderagent_proto_msgTypes[0]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use RunRequest.ProtoReflect.Descriptor instead.
func (*RunRequest) Descriptor() ([]byte, []int) {
	return file_tenderagent_proto_rawDescGZIP(), []int{0}
}

func (x *RunRequest) GetThreadId() string {
	if x != nil {
		return x.ThreadId
	}
	return ""
}

func (x *RunRequest) GetQuery() string {
	if x != nil {
		return x.Query
	}
	return ""
}

func (x *RunRequest) GetContextFiles() map[string]string {
	if x != nil {
		return x.ContextFiles
	}
	return nil
}

func (x *RunRequest) GetClusterId() string {
	if x != nil {
		return x.ClusterId
	}
	return ""
}

func (x *RunRequest) GetResume() *ResumeCommand {
	if x != nil {
		return x.Resume
	}
	return nil
}

type ResumeCommand struct {
	state protoimpl.MessageState `protogen:"open.v1"`
	// accept | edit | respond | ignore
	Action        string `protobuf:"bytes,1,opt,name=action,proto3" json:"action,omitempty"`
	Content       string `protobuf:"bytes,2,opt,name=content,proto3" json:"content,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ResumeCommand) Reset() {
	*x = ResumeCommand{}
	mi := &file_tenderagent_proto_msgTypes[1]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ResumeCommand) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ResumeCommand) ProtoMessage() {}

func (x *ResumeCommand) ProtoReflect() protoreflect.Message {
	mi := &file_tenderagent_proto_msgTypes[1]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ResumeCommand.ProtoReflect.Descriptor instead.
func (*ResumeCommand) Descriptor() ([]byte, []int) {
	return file_tenderagent_proto_rawDescGZIP(), []int{1}
}

func (x *ResumeCommand) GetAction() string {
	if x != nil {
		return x.Action
	}
	return ""
}

func (x *ResumeCommand) GetContent() string {
	if x != nil {
		return x.Content
	}
	return ""
}

type StepUpdate struct {
	state protoimpl.MessageState `protogen:"open.v1"`
	// Types that are valid to be assigned to Update:
	//
	//	*StepUpdate_Assistant
	//	*StepUpdate_ToolStart
	//	*StepUpdate_ToolEnd
	//	*StepUpdate_Plan
	//	*StepUpdate_SubagentStart
	//	*StepUpdate_SubagentEnd
	//	*StepUpdate_Interrupt
	//	*StepUpdate_Final
	Update        isStepUpdate_Update `protobuf_oneof:"update"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *StepUpdate) Reset() {
	*x = StepUpdate{}
	mi := &file_tenderagent_proto_msgTypes[2]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *StepUpdate) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*StepUpdate) ProtoMessage() {}

func (x *StepUpdate) ProtoReflect() protoreflect.Message {
	mi := &file_tenderagent_proto_msgTypes[2]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use StepUpdate.ProtoReflect.Descriptor instead.
func (*StepUpdate) Descriptor() ([]byte, []int) {
	return file_tenderagent_proto_rawDescGZIP(), []int{2}
}

func (x *StepUpdate) GetUpdate() isStepUpdate_Update {
	if x != nil {
		return x.Update
	}
	return nil
}

func (x *StepUpdate) GetAssistant() *AssistantSnapshot {
	if x != nil {
		if x, ok := x.Update.(*StepUpdate_Assistant); ok {
			return x.Assistant
		}
	}
	return nil
}

func (x *StepUpdate) GetToolStart() *ToolStart {
	if x != nil {
		if x, ok := x.Update.(*StepUpdate_ToolStart); ok {
			return x.ToolStart
		}
	}
	return nil
}

func (x *StepUpdate) GetToolEnd() *ToolEnd {
	if x != nil {
		if x, ok := x.Update.(*StepUpdate_ToolEnd); ok {
			return x.ToolEnd
		}
	}
	return nil
}

func (x *StepUpdate) GetPlan() *PlanSnapshot {
	if x != nil {
		if x, ok := x.Update.(*StepUpdate_Plan); ok {
			return x.Plan
		}
	}
	return nil
}

func (x *StepUpdate) GetSubagentStart() *SubagentStart {
	if x != nil {
		if x, ok := x.Update.(*StepUpdate_SubagentStart); ok {
			return x.SubagentStart
		}
	}
	return nil
}

func (x *StepUpdate) GetSubagentEnd() *SubagentEnd {
	if x != nil {
		if x, ok := x.Update.(*StepUpdate_SubagentEnd); ok {
			return x.SubagentEnd
		}
	}
	return nil
}

func (x *StepUpdate) GetInterrupt() *Interrupt {
	if x != nil {
		if x, ok := x.Update.(*StepUpdate_Interrupt); ok {
			return x.Interrupt
		}
	}
	return nil
}

func (x *StepUpdate) GetFinal() *FinalResult {
	if x != nil {
		if x, ok := x.Update.(*StepUpdate_Final); ok {
			return x.Final
		}
	}
	return nil
}

type isStepUpdate_Update interface {
	isStepUpdate_Update()
}

type StepUpdate_Assistant struct {
	Assistant *AssistantSnapshot `protobuf:"bytes,1,opt,name=assistant,proto3,oneof"`
}

type StepUpdate_ToolStart struct {
	ToolStart *ToolStart `protobuf:"bytes,2,opt,name=tool_start,json=toolStart,proto3,oneof"`
}

type StepUpdate_ToolEnd struct {
	ToolEnd *ToolEnd `protobuf:"bytes,3,opt,name=tool_end,json=toolEnd,proto3,oneof"`
}

type StepUpdate_Plan struct {
	Plan *PlanSnapshot `protobuf:"bytes,4,opt,name=plan,proto3,oneof"`
}

type StepUpdate_SubagentStart struct {
	SubagentStart *SubagentStart `protobuf:"bytes,5,opt,name=subagent_start,json=subagentStart,proto3,oneof"`
}

type StepUpdate_SubagentEnd struct {
	SubagentEnd *SubagentEnd `protobuf:"bytes,6,opt,name=subagent_end,json=subagentEnd,proto3,oneof"`
}

type StepUpdate_Interrupt struct {
	Interrupt *Interrupt `protobuf:"bytes,7,opt,name=interrupt,proto3,oneof"`
}

type StepUpdate_Final struct {
	Final *FinalResult `protobuf:"bytes,8,opt,name=final,proto3,oneof"`
}

func (*StepUpdate_Assistant) isStepUpdate_Update() {}

func (*StepUpdate_ToolStart) isStepUpdate_Update() {}

func (*StepUpdate_ToolEnd) isStepUpdate_Update() {}

func (*StepUpdate_Plan) isStepUpdate_Update() {}

func (*StepUpdate_SubagentStart) isStepUpdate_Update() {}

func (*StepUpdate_SubagentEnd) isStepUpdate_Update() {}

func (*StepUpdate_Interrupt) isStepUpdate_Update() {}

func (*StepUpdate_Final) isStepUpdate_Update() {}

// AssistantSnapshot is the graph's latest assistant message. snapshot_id
// is the graph-internal message id; consumers deduplicate on it.
type AssistantSnapshot struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	SnapshotId    string                 `protobuf:"bytes,1,opt,name=snapshot_id,json=snapshotId,proto3" json:"snapshot_id,omitempty"`
	Text          string                 `protobuf:"bytes,2,opt,name=text,proto3" json:"text,omitempty"`
	HasToolCalls  bool                   `protobuf:"varint,3,opt,name=has_tool_calls,json=hasToolCalls,proto3" json:"has_tool_calls,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *AssistantSnapshot) Reset() {
	*x = AssistantSnapshot{}
	mi := &file_tenderagent_proto_msgTypes[3]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *AssistantSnapshot) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*AssistantSnapshot) ProtoMessage() {}

func (x *AssistantSnapshot) ProtoReflect() protoreflect.Message {
	mi := &file_tenderagent_proto_msgTypes[3]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use AssistantSnapshot.ProtoReflect.Descriptor instead.
func (*AssistantSnapshot) Descriptor() ([]byte, []int) {
	return file_tenderagent_proto_rawDescGZIP(), []int{3}
}

func (x *AssistantSnapshot) GetSnapshotId() string {
	if x != nil {
		return x.SnapshotId
	}
	return ""
}

func (x *AssistantSnapshot) GetText() string {
	if x != nil {
		return x.Text
	}
	return ""
}

func (x *AssistantSnapshot) GetHasToolCalls() bool {
	if x != nil {
		return x.HasToolCalls
	}
	return false
}

type ToolStart struct {
	state  protoimpl.MessageState `protogen:"open.v1"`
	CallId string                 `protobuf:"bytes,1,opt,name=call_id,json=callId,proto3" json:"call_id,omitempty"`
	Name   string                 `protobuf:"bytes,2,opt,name=name,proto3" json:"name,omitempty"`
	// JSON object of the raw tool arguments.
	ArgumentsJson string `protobuf:"bytes,3,opt,name=arguments_json,json=argumentsJson,proto3" json:"arguments_json,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ToolStart) Reset() {
	*x = ToolStart{}
	mi := &file_tenderagent_proto_msgTypes[4]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ToolStart) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ToolStart) ProtoMessage() {}

func (x *ToolStart) ProtoReflect() protoreflect.Message {
	mi := &file_tenderagent_proto_msgTypes[4]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ToolStart.ProtoReflect.Descriptor instead.
func (*ToolStart) Descriptor() ([]byte, []int) {
	return file_tenderagent_proto_rawDescGZIP(), []int{4}
}

func (x *ToolStart) GetCallId() string {
	if x != nil {
		return x.CallId
	}
	return ""
}

func (x *ToolStart) GetName() string {
	if x != nil {
		return x.Name
	}
	return ""
}

func (x *ToolStart) GetArgumentsJson() string {
	if x != nil {
		return x.ArgumentsJson
	}
	return ""
}

type ToolEnd struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	CallId        string                 `protobuf:"bytes,1,opt,name=call_id,json=callId,proto3" json:"call_id,omitempty"`
	Name          string                 `protobuf:"bytes,2,opt,name=name,proto3" json:"name,omitempty"`
	Result        string                 `protobuf:"bytes,3,opt,name=result,proto3" json:"result,omitempty"`
	IsError       bool                   `protobuf:"varint,4,opt,name=is_error,json=isError,proto3" json:"is_error,omitempty"`
	DurationMs    int64                  `protobuf:"varint,5,opt,name=duration_ms,json=durationMs,proto3" json:"duration_ms,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ToolEnd) Reset() {
	*x = ToolEnd{}
	mi := &file_tenderagent_proto_msgTypes[5]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ToolEnd) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ToolEnd) ProtoMessage() {}

func (x *ToolEnd) ProtoReflect() protoreflect.Message {
	mi := &file_tenderagent_proto_msgTypes[5]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ToolEnd.ProtoReflect.Descriptor instead.
func (*ToolEnd) Descriptor() ([]byte, []int) {
	return file_tenderagent_proto_rawDescGZIP(), []int{5}
}

func (x *ToolEnd) GetCallId() string {
	if x != nil {
		return x.CallId
	}
	return ""
}

func (x *ToolEnd) GetName() string {
	if x != nil {
		return x.Name
	}
	return ""
}

func (x *ToolEnd) GetResult() string {
	if x != nil {
		return x.Result
	}
	return ""
}

func (x *ToolEnd) GetIsError() bool {
	if x != nil {
		return x.IsError
	}
	return false
}

func (x *ToolEnd) GetDurationMs() int64 {
	if x != nil {
		return x.DurationMs
	}
	return 0
}

type PlanSnapshot struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Items         []*PlanItem            `protobuf:"bytes,1,rep,name=items,proto3" json:"items,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *PlanSnapshot) Reset() {
	*x = PlanSnapshot{}
	mi := &file_tenderagent_proto_msgTypes[6]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *PlanSnapshot) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*PlanSnapshot) ProtoMessage() {}

func (x *PlanSnapshot) ProtoReflect() protoreflect.Message {
	mi := &file_tenderagent_proto_msgTypes[6]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use PlanSnapshot.ProtoReflect.Descriptor instead.
func (*PlanSnapshot) Descriptor() ([]byte, []int) {
	return file_tenderagent_proto_rawDescGZIP(), []int{6}
}

func (x *PlanSnapshot) GetItems() []*PlanItem {
	if x != nil {
		return x.Items
	}
	return nil
}

type PlanItem struct {
	state protoimpl.MessageState `protogen:"open.v1"`
	Id    string                 `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	Text  string                 `protobuf:"bytes,2,opt,name=text,proto3" json:"text,omitempty"`
	// pending | in_progress | completed
	Status        string `protobuf:"bytes,3,opt,name=status,proto3" json:"status,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *PlanItem) Reset() {
	*x = PlanItem{}
	mi := &file_tenderagent_proto_msgTypes[7]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *PlanItem) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*PlanItem) ProtoMessage() {}

func (x *PlanItem) ProtoReflect() protoreflect.Message {
	mi := &file_tenderagent_proto_msgTypes[7]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use PlanItem.ProtoReflect.Descriptor instead.
func (*PlanItem) Descriptor() ([]byte, []int) {
	return file_tenderagent_proto_rawDescGZIP(), []int{7}
}

func (x *PlanItem) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

func (x *PlanItem) GetText() string {
	if x != nil {
		return x.Text
	}
	return ""
}

func (x *PlanItem) GetStatus() string {
	if x != nil {
		return x.Status
	}
	return ""
}

type SubagentStart struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	AgentId       string                 `protobuf:"bytes,1,opt,name=agent_id,json=agentId,proto3" json:"agent_id,omitempty"`
	ParentCallId  string                 `protobuf:"bytes,2,opt,name=parent_call_id,json=parentCallId,proto3" json:"parent_call_id,omitempty"`
	Description   string                 `protobuf:"bytes,3,opt,name=description,proto3" json:"description,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *SubagentStart) Reset() {
	*x = SubagentStart{}
	mi := &file_tenderagent_proto_msgTypes[8]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *SubagentStart) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*SubagentStart) ProtoMessage() {}

func (x *SubagentStart) ProtoReflect() protoreflect.Message {
	mi := &file_tenderagent_proto_msgTypes[8]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use SubagentStart.ProtoReflect.Descriptor instead.
func (*SubagentStart) Descriptor() ([]byte, []int) {
	return file_tenderagent_proto_rawDescGZIP(), []int{8}
}

func (x *SubagentStart) GetAgentId() string {
	if x != nil {
		return x.AgentId
	}
	return ""
}

func (x *SubagentStart) GetParentCallId() string {
	if x != nil {
		return x.ParentCallId
	}
	return ""
}

func (x *SubagentStart) GetDescription() string {
	if x != nil {
		return x.Description
	}
	return ""
}

type SubagentEnd struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	AgentId       string                 `protobuf:"bytes,1,opt,name=agent_id,json=agentId,proto3" json:"agent_id,omitempty"`
	ParentCallId  string                 `protobuf:"bytes,2,opt,name=parent_call_id,json=parentCallId,proto3" json:"parent_call_id,omitempty"`
	DurationMs    int64                  `protobuf:"varint,3,opt,name=duration_ms,json=durationMs,proto3" json:"duration_ms,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *SubagentEnd) Reset() {
	*x = SubagentEnd{}
	mi := &file_tenderagent_proto_msgTypes[9]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *SubagentEnd) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*SubagentEnd) ProtoMessage() {}

func (x *SubagentEnd) ProtoReflect() protoreflect.Message {
	mi := &file_tenderagent_proto_msgTypes[9]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use SubagentEnd.ProtoReflect.Descriptor instead.
func (*SubagentEnd) Descriptor() ([]byte, []int) {
	return file_tenderagent_proto_rawDescGZIP(), []int{9}
}

func (x *SubagentEnd) GetAgentId() string {
	if x != nil {
		return x.AgentId
	}
	return ""
}

func (x *SubagentEnd) GetParentCallId() string {
	if x != nil {
		return x.ParentCallId
	}
	return ""
}

func (x *SubagentEnd) GetDurationMs() int64 {
	if x != nil {
		return x.DurationMs
	}
	return 0
}

// Interrupt signals a human-in-the-loop pause. payload_json is typically
// {question, context}.
type Interrupt struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	ThreadId      string                 `protobuf:"bytes,1,opt,name=thread_id,json=threadId,proto3" json:"thread_id,omitempty"`
	PayloadJson   string                 `protobuf:"bytes,2,opt,name=payload_json,json=payloadJson,proto3" json:"payload_json,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *Interrupt) Reset() {
	*x = Interrupt{}
	mi := &file_tenderagent_proto_msgTypes[10]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *Interrupt) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*Interrupt) ProtoMessage() {}

func (x *Interrupt) ProtoReflect() protoreflect.Message {
	mi := &file_tenderagent_proto_msgTypes[10]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use Interrupt.ProtoReflect.Descriptor instead.
func (*Interrupt) Descriptor() ([]byte, []int) {
	return file_tenderagent_proto_rawDescGZIP(), []int{10}
}

func (x *Interrupt) GetThreadId() string {
	if x != nil {
		return x.ThreadId
	}
	return ""
}

func (x *Interrupt) GetPayloadJson() string {
	if x != nil {
		return x.PayloadJson
	}
	return ""
}

type FinalResult struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Text          string                 `protobuf:"bytes,1,opt,name=text,proto3" json:"text,omitempty"`
	ToolCalls     int32                  `protobuf:"varint,2,opt,name=tool_calls,json=toolCalls,proto3" json:"tool_calls,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *FinalResult) Reset() {
	*x = FinalResult{}
	mi := &file_tenderagent_proto_msgTypes[11]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *FinalResult) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*FinalResult) ProtoMessage() {}

func (x *FinalResult) ProtoReflect() protoreflect.Message {
	mi := &file_tenderagent_proto_msgTypes[11]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use FinalResult.ProtoReflect.Descriptor instead.
func (*FinalResult) Descriptor() ([]byte, []int) {
	return file_tenderagent_proto_rawDescGZIP(), []int{11}
}

func (x *FinalResult) GetText() string {
	if x != nil {
		return x.Text
	}
	return ""
}

func (x *FinalResult) GetToolCalls() int32 {
	if x != nil {
		return x.ToolCalls
	}
	return 0
}

var File_tenderagent_proto protoreflect.FileDescriptor

const file_tenderagent_proto_rawDesc = "" +
	"\n" +
	"\x11tenderagent.proto\x12\x0etenderagent.v1\"\xa9\x02\n" +
	"\n" +
	"RunRequest\x12\x1b\n" +
	"\tthread_id\x18\x01 \x01(\tR\bthreadId\x12\x14\n" +
	"\x05query\x18\x02 \x01(\tR\x05query\x12Q\n" +
	"\rcontext_files\x18\x03 \x03(\v2,.tenderagent.v1.RunRequest.ContextFilesEntryR\fcontextFiles\x12\x1d\n" +
	"\n" +
	"cluster_id\x18\x04 \x01(\tR\tclusterId\x125\n" +
	"\x06resume\x18\x05 \x01(\v2\x1d.tenderagent.v1.ResumeCommandR\x06resume\x1a?\n" +
	"\x11ContextFilesEntry\x12\x10\n" +
	"\x03key\x18\x01 \x01(\tR\x03key\x12\x14\n" +
	"\x05value\x18\x02 \x01(\tR\x05value:\x028\x01\"A\n" +
	"\rResumeCommand\x12\x16\n" +
	"\x06action\x18\x01 \x01(\tR\x06action\x12\x18\n" +
	"\acontent\x18\x02 \x01(\tR\acontent\"\xf9\x03\n" +
	"\n" +
	"StepUpdate\x12A\n" +
	"\tassistant\x18\x01 \x01(\v2!.tenderagent.v1.AssistantSnapshotH\x00R\tassistant\x12:\n" +
	"\n" +
	"tool_start\x18\x02 \x01(\v2\x19.tenderagent.v1.ToolStartH\x00R\ttoolStart\x124\n" +
	"\btool_end\x18\x03 \x01(\v2\x17.tenderagent.v1.ToolEndH\x00R\atoolEnd\x122\n" +
	"\x04plan\x18\x04 \x01(\v2\x1c.tenderagent.v1.PlanSnapshotH\x00R\x04plan\x12F\n" +
	"\x0esubagent_start\x18\x05 \x01(\v2\x1d.tenderagent.v1.SubagentStartH\x00R\rsubagentStart\x12@\n" +
	"\fsubagent_end\x18\x06 \x01(\v2\x1b.tenderagent.v1.SubagentEndH\x00R\vsubagentEnd\x129\n" +
	"\tinterrupt\x18\a \x01(\v2\x19.tenderagent.v1.InterruptH\x00R\tinterrupt\x123\n" +
	"\x05final\x18\b \x01(\v2\x1b.tenderagent.v1.FinalResultH\x00R\x05finalB\b\n" +
	"\x06update\"n\n" +
	"\x11AssistantSnapshot\x12\x1f\n" +
	"\vsnapshot_id\x18\x01 \x01(\tR\n" +
	"snapshotId\x12\x12\n" +
	"\x04text\x18\x02 \x01(\tR\x04text\x12$\n" +
	"\x0ehas_tool_calls\x18\x03 \x01(\bR\fhasToolCalls\"_\n" +
	"\tToolStart\x12\x17\n" +
	"\acall_id\x18\x01 \x01(\tR\x06callId\x12\x12\n" +
	"\x04name\x18\x02 \x01(\tR\x04name\x12%\n" +
	"\x0earguments_json\x18\x03 \x01(\tR\rargumentsJson\"\x8a\x01\n" +
	"\aToolEnd\x12\x17\n" +
	"\acall_id\x18\x01 \x01(\tR\x06callId\x12\x12\n" +
	"\x04name\x18\x02 \x01(\tR\x04name\x12\x16\n" +
	"\x06result\x18\x03 \x01(\tR\x06result\x12\x19\n" +
	"\bis_error\x18\x04 \x01(\bR\aisError\x12\x1f\n" +
	"\vduration_ms\x18\x05 \x01(\x03R\n" +
	"durationMs\">\n" +
	"\fPlanSnapshot\x12.\n" +
	"\x05items\x18\x01 \x03(\v2\x18.tenderagent.v1.PlanItemR\x05items\"F\n" +
	"\bPlanItem\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\tR\x02id\x12\x12\n" +
	"\x04text\x18\x02 \x01(\tR\x04text\x12\x16\n" +
	"\x06status\x18\x03 \x01(\tR\x06status\"r\n" +
	"\rSubagentStart\x12\x19\n" +
	"\bagent_id\x18\x01 \x01(\tR\aagentId\x12$\n" +
	"\x0eparent_call_id\x18\x02 \x01(\tR\fparentCallId\x12 \n" +
	"\vdescription\x18\x03 \x01(\tR\vdescription\"o\n" +
	"\vSubagentEnd\x12\x19\n" +
	"\bagent_id\x18\x01 \x01(\tR\aagentId\x12$\n" +
	"\x0eparent_call_id\x18\x02 \x01(\tR\fparentCallId\x12\x1f\n" +
	"\vduration_ms\x18\x03 \x01(\x03R\n" +
	"durationMs\"K\n" +
	"\tInterrupt\x12\x1b\n" +
	"\tthread_id\x18\x01 \x01(\tR\bthreadId\x12!\n" +
	"\fpayload_json\x18\x02 \x01(\tR\vpayloadJson\"@\n" +
	"\vFinalResult\x12\x12\n" +
	"\x04text\x18\x01 \x01(\tR\x04text\x12\x1d\n" +
	"\n" +
	"tool_calls\x18\x02 \x01(\x05R\ttoolCalls2M\n" +
	"\n" +
	"AgentGraph\x12?\n" +
	"\x03Run\x12\x1a.tenderagent.v1.RunRequest\x1a\x1a.tenderagent.v1.StepUpdate0\x01B.Z,github.com/tendersuite/tenderd/proto;agentv1b\x06proto3"

var (
	file_tenderagent_proto_rawDescOnce sync.Once
	file_tenderagent_proto_rawDescData []byte
)

func file_tenderagent_proto_rawDescGZIP() []byte {
	file_tenderagent_proto_rawDescOnce.Do(func() {
		file_tenderagent_proto_rawDescData = protoimpl.X.CompressGZIP(unsafe.Slice(unsafe.StringData(file_tenderagent_proto_rawDesc), len(file_tenderagent_proto_rawDesc)))
	})
	return file_tenderagent_proto_rawDescData
}

var file_tenderagent_proto_msgTypes = make([]protoimpl.MessageInfo, 13)
var file_tenderagent_proto_goTypes = []any{
	(*RunRequest)(nil),        // 0: tenderagent.v1.RunRequest
	(*ResumeCommand)(nil),     // 1: tenderagent.v1.ResumeCommand
	(*StepUpdate)(nil),        // 2: tenderagent.v1.StepUpdate
	(*AssistantSnapshot)(nil), // 3: tenderagent.v1.AssistantSnapshot
	(*ToolStart)(nil),         // 4: tenderagent.v1.ToolStart
	(*ToolEnd)(nil),           // 5: tenderagent.v1.ToolEnd
	(*PlanSnapshot)(nil),      // 6: tenderagent.v1.PlanSnapshot
	(*PlanItem)(nil),          // 7: tenderagent.v1.PlanItem
	(*SubagentStart)(nil),     // 8: tenderagent.v1.SubagentStart
	(*SubagentEnd)(nil),       // 9: tenderagent.v1.SubagentEnd
	(*Interrupt)(nil),         // 10: tenderagent.v1.Interrupt
	(*FinalResult)(nil),       // 11: tenderagent.v1.FinalResult
	nil,                       // 12: tenderagent.v1.RunRequest.ContextFilesEntry
}
var file_tenderagent_proto_depIdxs = []int32{
	12, // 0: tenderagent.v1.RunRequest.context_files:type_name -> tenderagent.v1.RunRequest.ContextFilesEntry
	1,  // 1: tenderagent.v1.RunRequest.resume:type_name -> tenderagent.v1.ResumeCommand
	3,  // 2: tenderagent.v1.StepUpdate.assistant:type_name -> tenderagent.v1.AssistantSnapshot
	4,  // 3: tenderagent.v1.StepUpdate.tool_start:type_name -> tenderagent.v1.ToolStart
	5,  // 4: tenderagent.v1.StepUpdate.tool_end:type_name -> tenderagent.v1.ToolEnd
	6,  // 5: tenderagent.v1.StepUpdate.plan:type_name -> tenderagent.v1.PlanSnapshot
	8,  // 6: tenderagent.v1.StepUpdate.subagent_start:type_name -> tenderagent.v1.SubagentStart
	9,  // 7: tenderagent.v1.StepUpdate.subagent_end:type_name -> tenderagent.v1.SubagentEnd
	10, // 8: tenderagent.v1.StepUpdate.interrupt:type_name -> tenderagent.v1.Interrupt
	11, // 9: tenderagent.v1.StepUpdate.final:type_name -> tenderagent.v1.FinalResult
	7,  // 10: tenderagent.v1.PlanSnapshot.items:type_name -> tenderagent.v1.PlanItem
	0,  // 11: tenderagent.v1.AgentGraph.Run:input_type -> tenderagent.v1.RunRequest
	2,  // 12: tenderagent.v1.AgentGraph.Run:output_type -> tenderagent.v1.StepUpdate
	12, // [12:13] is the sub-list for method output_type
	11, // [11:12] is the sub-list for method input_type
	11, // [11:11] is the sub-list for extension type_name
	11, // [11:11] is the sub-list for extension extendee
	0,  // [0:11] is the sub-list for field type_name
}

func init() { file_tenderagent_proto_init() }
func file_tenderagent_proto_init() {
	if File_tenderagent_proto != nil {
		return
	}
	file_tenderagent_proto_msgTypes[2].OneofWrappers = []any{
		(*StepUpdate_Assistant)(nil),
		(*StepUpdate_ToolStart)(nil),
		(*StepUpdate_ToolEnd)(nil),
		(*StepUpdate_Plan)(nil),
		(*StepUpdate_SubagentStart)(nil),
		(*StepUpdate_SubagentEnd)(nil),
		(*StepUpdate_Interrupt)(nil),
		(*StepUpdate_Final)(nil),
	}
	type x struct{}
	out := protoimpl.TypeBuilder{
		File: protoimpl.DescBuilder{
			GoPackagePath: reflect.TypeOf(x{}).PkgPath(),
			RawDescriptor: unsafe.Slice(unsafe.StringData(file_tenderagent_proto_rawDesc), len(file_tenderagent_proto_rawDesc)),
			NumEnums:      0,
			NumMessages:   13,
			NumExtensions: 0,
			NumServices:   1,
		},
		GoTypes:           file_tenderagent_proto_goTypes,
		DependencyIndexes: file_tenderagent_proto_depIdxs,
		MessageInfos:      file_tenderagent_proto_msgTypes,
	}.Build()
	File_tenderagent_proto = out.File
	file_tenderagent_proto_goTypes = nil
	file_tenderagent_proto_depIdxs = nil
}
